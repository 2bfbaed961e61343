package notecipher

import (
	"crypto/rand"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/agl/gcmsiv"

	"github.com/dmitrymomot/sealnote/pkg/kdf"
)

// Cipher seals notes with password-derived keys. It is safe for concurrent use
// as long as the configured random source is.
type Cipher struct {
	deriver kdf.Deriver
	random  io.Reader
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithDeriver sets the key derivation function. Nil is ignored.
func WithDeriver(d kdf.Deriver) Option {
	return func(c *Cipher) {
		if d != nil {
			c.deriver = d
		}
	}
}

// WithRandom replaces crypto/rand as the nonce and salt source. Nil is ignored.
func WithRandom(r io.Reader) Option {
	return func(c *Cipher) {
		if r != nil {
			c.random = r
		}
	}
}

// New returns a Cipher using the default scrypt deriver and crypto/rand.
func New(opts ...Option) *Cipher {
	c := &Cipher{
		deriver: kdf.Default(),
		random:  rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCipher = New()

// Encrypt seals plaintext with the default Cipher.
func Encrypt(plaintext, password string) ([]byte, error) {
	return defaultCipher.Encrypt(plaintext, password)
}

// Decrypt opens frame with the default Cipher.
func Decrypt(frame []byte, password string) (string, error) {
	return defaultCipher.Decrypt(frame, password)
}

// Encrypt returns nonce ‖ salt ‖ AES-256-GCM-SIV(plaintext).
func (c *Cipher) Encrypt(plaintext, password string) ([]byte, error) {
	frame := make([]byte, HeaderSize, HeaderSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, frame); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	nonce, salt := frame[:NonceSize], frame[NonceSize:HeaderSize]

	key := c.deriver.Derive(salt, password)
	defer clear(key[:])

	aead, err := gcmsiv.NewGCMSIV(key[:])
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return aead.Seal(frame, nonce, []byte(plaintext), nil), nil
}

// Decrypt opens a frame produced by Encrypt and returns the note text.
func (c *Cipher) Decrypt(frame []byte, password string) (string, error) {
	nonce, salt, body, err := SplitFrame(frame)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	key := c.deriver.Derive(salt, password)
	defer clear(key[:])

	aead, err := gcmsiv.NewGCMSIV(key[:])
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	plaintext, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidEncoding
	}
	return string(plaintext), nil
}
