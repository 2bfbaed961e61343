package kdf

import "errors"

var (
	// ErrInvalidParams is returned when cost parameters are rejected by the primitive.
	ErrInvalidParams = errors.New("invalid key derivation parameters")

	// ErrUnknownAlgorithm is returned by ByName for unsupported algorithm names.
	ErrUnknownAlgorithm = errors.New("unknown key derivation algorithm")
)
