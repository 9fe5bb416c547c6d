package dto

// ErrorResponse is the standard error body: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error" example:"Resource not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse is the standard body for mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// Pagination describes the position of a page inside a full result set.
type Pagination struct {
	Total int64 `json:"total" example:"42"`
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"10"`
	Pages int   `json:"pages" example:"5"`
}

// PaginatedResponse wraps a page of items with its pagination block.
type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}
