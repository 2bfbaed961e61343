package signing

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/dmitrymomot/sealnote/pkg/kdf"
)

const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// Keypair is an ephemeral Ed25519 keypair. Never persist it.
type Keypair struct {
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

// PublicKey returns the public half.
func (k Keypair) PublicKey() [PublicKeySize]byte {
	return [PublicKeySize]byte(k.public)
}

// PublicKeyHex returns the public half hex-encoded, the format servers are configured with.
func (k Keypair) PublicKeyHex() string {
	return hex.EncodeToString(k.public)
}

// Sign signs message with the private half.
func (k Keypair) Sign(message []byte) [SignatureSize]byte {
	return [SignatureSize]byte(ed25519.Sign(k.private, message))
}

// Authority derives keypairs with a fixed key derivation function.
type Authority struct {
	deriver kdf.Deriver
}

// NewAuthority returns an Authority using d, or the default scrypt deriver when d is nil.
func NewAuthority(d kdf.Deriver) *Authority {
	if d == nil {
		d = kdf.Default()
	}
	return &Authority{deriver: d}
}

var defaultAuthority = NewAuthority(nil)

// DeriveKeypair derives the keypair for context and password with the default Authority.
func DeriveKeypair(context, password string) Keypair {
	return defaultAuthority.DeriveKeypair(context, password)
}

// Sign signs message with the default Authority.
func Sign(message []byte, context, password string) [SignatureSize]byte {
	return defaultAuthority.Sign(message, context, password)
}

// PublicKey returns the public key for context and password with the default Authority.
func PublicKey(context, password string) [PublicKeySize]byte {
	return defaultAuthority.PublicKey(context, password)
}

// DeriveKeypair uses kdf(context, password) as the Ed25519 seed.
func (a *Authority) DeriveKeypair(context, password string) Keypair {
	seed := a.deriver.Derive([]byte(context), password)
	defer clear(seed[:])

	private := ed25519.NewKeyFromSeed(seed[:])
	return Keypair{
		public:  private.Public().(ed25519.PublicKey),
		private: private,
	}
}

// Sign derives the keypair and signs message.
func (a *Authority) Sign(message []byte, context, password string) [SignatureSize]byte {
	return a.DeriveKeypair(context, password).Sign(message)
}

// PublicKey derives the keypair and returns only its public half.
func (a *Authority) PublicKey(context, password string) [PublicKeySize]byte {
	return a.DeriveKeypair(context, password).PublicKey()
}
