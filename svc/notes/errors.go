package notes

import "errors"

var (
	// ErrWriteRejected wraps every reason a write was refused without mutation.
	ErrWriteRejected = errors.New("note write rejected")

	// ErrConflict means another write was committed between verification and commit.
	ErrConflict = errors.New("note changed concurrently")

	// ErrStoreFailure wraps persistence errors.
	ErrStoreFailure = errors.New("note store failure")
)
