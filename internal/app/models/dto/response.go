package dto

// APIResponse is the uniform envelope every endpoint replies with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewErrorResponse creates a failure envelope with a nil data payload
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Data:    nil,
		Message: message,
	}
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}
