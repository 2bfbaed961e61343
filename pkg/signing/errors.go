package signing

import "errors"

var (
	ErrInvalidPublicKey       = errors.New("invalid ed25519 public key")
	ErrWeakPublicKey          = errors.New("ed25519 public key has small order")
	ErrInvalidSignatureLength = errors.New("invalid ed25519 signature length")
	ErrInvalidSignature       = errors.New("ed25519 signature verification failed")
)
