package notestore

import "errors"

var (
	ErrGetFailed       = errors.New("failed to read note")
	ErrSetFailed       = errors.New("failed to write note")
	ErrCASFailed       = errors.New("failed to conditionally write note")
	ErrInvalidS3Config = errors.New("invalid s3 note store config")
	ErrUnavailable     = errors.New("note store unavailable")
)
