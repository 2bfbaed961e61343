package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with the status code and the short message to send.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // machine-readable message, e.g. "write_rejected"
}

func (e HTTPError) Error() string {
	return e.Key
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable    = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// Error wraps cause so that errors.As finds httpErr and errors.Is still
// matches cause. The error handler logs cause and sends httpErr.
func Error(httpErr HTTPError, cause error) error {
	if cause == nil {
		return httpErr
	}
	return errors.Join(httpErr, cause)
}
