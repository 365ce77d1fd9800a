package dto

// MessageResponse is the standard error/info payload. Clients of the legacy
// API expect a bare {"message": "..."} object, so no envelope is added.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message payload
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
