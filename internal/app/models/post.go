package models

import (
	"time"
)

// Post defines the post model based on the 'posts' table
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	FileURL   *string   `json:"fileUrl,omitempty" db:"file_url"` // Optional attachment URL (nullable)
	AuthorID  int64     `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    *User     `json:"author,omitempty"` // Relation, no db tag
}
