package dto

// DateTimeLayout is the layout of every date/time field in requests.
const DateTimeLayout = "2006-01-02 15:04"

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries field -> messages for redisplaying a form.
type ValidationErrorResponse struct {
	Code   string              `json:"code"`
	Fields map[string][]string `json:"fields"`
}

// ListResponse wraps a list payload.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
