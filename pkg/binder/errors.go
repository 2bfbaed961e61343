package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable tells handler.Wrap to skip a binder, for example
	// RawBody on a struct without a body field.
	ErrBinderNotApplicable = errors.New("binder not applicable")
	ErrFailedToParseHeader = errors.New("failed to parse request headers")
	ErrFailedToReadBody    = errors.New("failed to read request body")
	ErrBodyTooLarge        = errors.New("request body too large")
	ErrInvalidTarget       = errors.New("binding target must be a non-nil pointer to struct")
)
