package noteclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL = errors.New("invalid notes server URL")
	ErrRequestFailed  = errors.New("notes request failed")
	ErrWriteRejected  = errors.New("note write rejected by server")
)

// StatusError is a non-2xx response from the server.
type StatusError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request_id: " + e.RequestID + ")"
	}
	return msg
}

// WriteError is returned by Save when the server refuses the write. PublicKey
// is the hex key the client signed with, to compare against the key the
// server trusts.
type WriteError struct {
	Err       *StatusError
	PublicKey string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write rejected: %v; signed with public key %s", e.Err, e.PublicKey)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for ErrWriteRejected.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteRejected
}
