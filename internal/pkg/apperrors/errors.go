package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrEmptyContent = errors.New("content is required")
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrInvalidID    = errors.New("invalid id")

	// Conflict errors
	ErrEmailTaken     = errors.New("email already in use")
	ErrStudentIDTaken = errors.New("student id already in use")

	// Resource errors
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
)
