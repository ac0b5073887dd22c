package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Ayse Yilmaz"`                     // Display name
	Email     string    `json:"email" db:"email" example:"ayse@campus.edu"`               // User's email address (unique)
	StudentID string    `json:"studentId" db:"student_id" example:"20210101"`             // Student number (unique)
	Major     string    `json:"major" db:"major" example:"Computer Engineering"`          // Declared major
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Bio       *string   `json:"bio,omitempty" db:"bio"`                                   // Profile bio (nullable)
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`                      // Avatar image URL (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
