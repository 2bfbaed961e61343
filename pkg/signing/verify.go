package signing

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
)

// Verifier checks signatures against one trusted public key.
type Verifier struct {
	public ed25519.PublicKey
}

// NewVerifier validates public and returns a Verifier for it.
func NewVerifier(public []byte) (*Verifier, error) {
	if len(public) != PublicKeySize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidPublicKey, len(public), PublicKeySize)
	}
	weak, err := isSmallOrder(public)
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}
	if weak {
		return nil, ErrWeakPublicKey
	}
	return &Verifier{public: ed25519.PublicKey(append([]byte(nil), public...))}, nil
}

// ParseVerifier decodes a hex public key and returns a Verifier for it.
func ParseVerifier(hexKey string) (*Verifier, error) {
	public, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}
	return NewVerifier(public)
}

// PublicKeyHex returns the trusted key hex-encoded.
func (v *Verifier) PublicKeyHex() string {
	return hex.EncodeToString(v.public)
}

// Verify reports whether signature is a valid signature of message by the trusted key.
func (v *Verifier) Verify(message, signature []byte) error {
	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidSignatureLength, len(signature), SignatureSize)
	}
	// Small-order R values allow signatures that verify for many messages.
	if weak, err := isSmallOrder(signature[:32]); err != nil || weak {
		return ErrInvalidSignature
	}
	if !ed25519.Verify(v.public, message, signature) {
		return ErrInvalidSignature
	}
	return nil
}

func isSmallOrder(encoded []byte) (bool, error) {
	p, err := new(edwards25519.Point).SetBytes(encoded)
	if err != nil {
		return false, err
	}
	return new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1, nil
}
