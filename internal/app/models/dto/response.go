package dto

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message" example:"Login successful"`
}

// ErrorResponse is the single failure shape every endpoint returns:
// a JSON body carrying one human-readable error string.
type ErrorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
