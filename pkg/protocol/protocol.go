package protocol

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// SignatureHeader carries the hex-encoded write signature.
const SignatureHeader = "notes-signature"

// SignatureSize is the length of a decoded write signature.
const SignatureSize = 64

// Message returns previous ‖ next in a newly allocated slice.
func Message(previous, next []byte) []byte {
	msg := make([]byte, 0, len(previous)+len(next))
	msg = append(msg, previous...)
	return append(msg, next...)
}

// EncodeSignature hex-encodes a signature for the SignatureHeader.
func EncodeSignature(sig [SignatureSize]byte) string {
	return hex.EncodeToString(sig[:])
}

// DecodeSignature parses a SignatureHeader value.
func DecodeSignature(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrMissingSignature
	}
	sig, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Join(ErrMalformedSignature, err)
	}
	if len(sig) != SignatureSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrMalformedSignature, len(sig), SignatureSize)
	}
	return sig, nil
}

// Encrypter seals note text into a frame. *notecipher.Cipher implements it.
type Encrypter interface {
	Encrypt(plaintext, password string) ([]byte, error)
}

// Signer signs with a password-derived key. *signing.Authority implements it.
type Signer interface {
	Sign(message []byte, context, password string) [SignatureSize]byte
}

// Update is a signed replacement for the stored frame.
type Update struct {
	Previous  []byte
	Frame     []byte
	Signature [SignatureSize]byte
}

// SignatureHex returns the value for the SignatureHeader.
func (u Update) SignatureHex() string {
	return EncodeSignature(u.Signature)
}

// Prepare encrypts text and signs previous ‖ frame. previous is the value the
// caller last fetched or successfully wrote; nil means no note is stored.
func Prepare(enc Encrypter, signer Signer, previous []byte, text, context, password string) (Update, error) {
	frame, err := enc.Encrypt(text, password)
	if err != nil {
		return Update{}, err
	}
	return Update{
		Previous:  previous,
		Frame:     frame,
		Signature: signer.Sign(Message(previous, frame), context, password),
	}, nil
}
