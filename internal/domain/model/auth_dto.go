package model

// MessageResponse is the body returned by the auth endpoints
type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// ErrorResponse mirrors the {"error": "..."} body used by every controller
type ErrorResponse struct {
	Error string `json:"error"`
}
