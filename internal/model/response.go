package model

// Response is the uniform shape of every UI-facing result.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
}

// OK builds a successful response.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

// Fail builds a failed response.
func Fail(message string) Response[struct{}] {
	return Response[struct{}]{Success: false, Message: message}
}
