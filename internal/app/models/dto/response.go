package dto

// DataResponse wraps a payload under the standard "data" key
type DataResponse struct {
	Data interface{} `json:"data"`
}

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// NewDataResponse creates a standard data response
func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{Data: data}
}

// NewMessageResponse creates a standard message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
