// Package responses defines the JSON envelope the graph API replies
// with. Success responses wrap the entity (project, node, link or
// attachment metadata) in Data; error responses carry a client-facing
// message and optional detail.
package responses

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse wraps an entity in the success envelope
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds the error envelope. Details is for binding
// errors and the like; database errors stay out of it.
func NewErrorResponse(error string, details string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   error,
		Details: details,
	}
}
