package dto

import "time"

// UpdateSettingsRequest represents a profile settings update
type UpdateSettingsRequest struct {
	Name  string `json:"name" binding:"required"`
	Major string `json:"major" binding:"required"`
}

// UserCard is the compact user shape shown in people listings
type UserCard struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Major     string  `json:"major"`
	StudentID string  `json:"studentId"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// ProfileResponse is a user's public profile together with their posts
type ProfileResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	StudentID string         `json:"studentId"`
	Major     string         `json:"major"`
	Bio       *string        `json:"bio,omitempty"`
	AvatarURL *string        `json:"avatarUrl,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Posts     []PostResponse `json:"posts"`
}

// DeleteUserRequest identifies the account an admin wants removed
type DeleteUserRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// FileUploadResponse carries the public URL of a stored upload
type FileUploadResponse struct {
	URL string `json:"url"`
}
