package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	StudentID string `json:"studentId" binding:"required"`
	Major     string `json:"major" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary represents the authenticated user's own account information
type UserSummary struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"Ayse Yilmaz"`
	Email     string  `json:"email" example:"ayse@campus.edu"`
	Major     string  `json:"major" example:"Computer Engineering"`
	StudentID string  `json:"studentId" example:"20210101"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}
