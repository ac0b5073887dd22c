package services

import (
	"context"
	"sort"
	"time"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	for _, user := range f.users {
		if user.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateSettings(_ context.Context, id int64, name, major string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user.Name = name
	user.Major = major
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ListRecent(_ context.Context, excludeID int64, limit int) ([]*models.User, error) {
	var result []*models.User
	for _, user := range f.users {
		if user.ID == excludeID {
			continue
		}
		copied := *user
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeUserRepo) DeleteWithPosts(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type likePair struct {
	userID int64
	postID int64
}

type fakeLikeRepo struct {
	likes map[likePair]bool
	// forceConflict simulates a concurrent insert winning the race
	forceConflict bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[likePair]bool{}}
}

func (f *fakeLikeRepo) Insert(_ context.Context, userID, postID int64) (bool, error) {
	if f.forceConflict {
		f.likes[likePair{userID, postID}] = true
		return false, nil
	}
	key := likePair{userID, postID}
	if f.likes[key] {
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakeLikeRepo) Delete(_ context.Context, userID, postID int64) (bool, error) {
	key := likePair{userID, postID}
	if !f.likes[key] {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeLikeRepo) CountByPost(_ context.Context, postID int64) (int, error) {
	count := 0
	for key := range f.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

type followPair struct {
	followerID  int64
	followingID int64
}

type fakeFollowRepo struct {
	follows map[followPair]bool
	calls   int
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: map[followPair]bool{}}
}

func (f *fakeFollowRepo) Insert(_ context.Context, followerID, followingID int64) (bool, error) {
	f.calls++
	key := followPair{followerID, followingID}
	if f.follows[key] {
		return false, nil
	}
	f.follows[key] = true
	return true, nil
}

func (f *fakeFollowRepo) Delete(_ context.Context, followerID, followingID int64) (bool, error) {
	f.calls++
	key := followPair{followerID, followingID}
	if !f.follows[key] {
		return false, nil
	}
	delete(f.follows, key)
	return true, nil
}

type fakePostRepo struct {
	posts  map[int64]*models.PostWithMeta
	nextID int64
	// lastSearch records the filter the service passed down
	lastSearch string
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]*models.PostWithMeta{}, nextID: 1}
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	post.CreatedAt = time.Now()
	f.posts[post.ID] = &models.PostWithMeta{Post: *post}
	return nil
}

func (f *fakePostRepo) GetWithMeta(_ context.Context, id int64) (*models.PostWithMeta, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePostRepo) ListWithMeta(_ context.Context, search string) ([]*models.PostWithMeta, error) {
	f.lastSearch = search
	var result []*models.PostWithMeta
	for _, post := range f.posts {
		result = append(result, post)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID int64) ([]*models.PostWithMeta, error) {
	var result []*models.PostWithMeta
	for _, post := range f.posts {
		if post.AuthorID == authorID {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

type fakeCommentRepo struct {
	comments []*models.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	comment.CreatedAt = time.Now()
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	return result, nil
}
