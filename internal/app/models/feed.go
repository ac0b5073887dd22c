package models

// PostWithMeta is a post row joined with the feed metadata every post
// listing embeds: the author, the ids of users who liked the post and
// the comment count.
type PostWithMeta struct {
	Post
	AuthorRow    User
	LikeUserIDs  []int64
	CommentCount int
}
