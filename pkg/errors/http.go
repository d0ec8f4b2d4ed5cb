package errors

import "net/http"

// HTTPError is an error that is its own HTTP response: a status and a client-safe message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string { return e.Message }

// ResponseStatus binds every HTTPError to its own status.
func (e *HTTPError) ResponseStatus() (int, string, bool) {
	return e.Code, http.StatusText(e.Code), true
}

var ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "too many requests")
