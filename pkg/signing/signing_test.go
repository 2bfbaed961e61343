package signing_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealnote/pkg/kdf"
	"github.com/dmitrymomot/sealnote/pkg/signing"
)

const origin = "https://notes.example.com"

func newAuthority() *signing.Authority {
	return signing.NewAuthority(kdf.MustScrypt(kdf.ScryptParams{N: 1 << 10, R: 8, P: 1}))
}

func TestDeriveKeypair_Deterministic(t *testing.T) {
	t.Parallel()
	auth := newAuthority()

	k1 := auth.DeriveKeypair(origin, "pw1")
	k2 := auth.DeriveKeypair(origin, "pw1")
	assert.Equal(t, k1.PublicKey(), k2.PublicKey())
	assert.Equal(t, k1.Sign([]byte("msg")), k2.Sign([]byte("msg")), "ed25519 signatures are deterministic")

	assert.NotEqual(t, k1.PublicKey(), auth.DeriveKeypair(origin, "pw2").PublicKey())
	assert.NotEqual(t, k1.PublicKey(), auth.DeriveKeypair("https://other.example.com", "pw1").PublicKey())
}

func TestAuthority_PublicKeyMatchesKeypair(t *testing.T) {
	t.Parallel()
	auth := newAuthority()

	pub := auth.PublicKey(origin, "pw")
	kp := auth.DeriveKeypair(origin, "pw")
	assert.Equal(t, pub, kp.PublicKey())
	assert.Equal(t, hex.EncodeToString(pub[:]), kp.PublicKeyHex())
}

func TestSignVerify(t *testing.T) {
	t.Parallel()
	auth := newAuthority()
	pub := auth.PublicKey(origin, "pw")

	v, err := signing.NewVerifier(pub[:])
	require.NoError(t, err)

	msg := []byte("old frame bytes || new frame bytes")
	sig := auth.Sign(msg, origin, "pw")
	require.NoError(t, v.Verify(msg, sig[:]))

	t.Run("different message", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, v.Verify([]byte("something else"), sig[:]), signing.ErrInvalidSignature)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		other := auth.Sign(msg, origin, "not pw")
		require.ErrorIs(t, v.Verify(msg, other[:]), signing.ErrInvalidSignature)
	})

	t.Run("wrong context", func(t *testing.T) {
		t.Parallel()
		other := auth.Sign(msg, "https://evil.example.com", "pw")
		require.ErrorIs(t, v.Verify(msg, other[:]), signing.ErrInvalidSignature)
	})

	t.Run("flipped bit", func(t *testing.T) {
		t.Parallel()
		bad := bytes.Clone(sig[:])
		bad[40] ^= 0x80
		require.ErrorIs(t, v.Verify(msg, bad), signing.ErrInvalidSignature)
	})

	t.Run("short signature", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, v.Verify(msg, sig[:63]), signing.ErrInvalidSignatureLength)
	})

	t.Run("small order R", func(t *testing.T) {
		t.Parallel()
		weak := make([]byte, signing.SignatureSize)
		weak[0] = 1 // identity point encoding, S = 0
		require.ErrorIs(t, v.Verify(msg, weak), signing.ErrInvalidSignature)
	})
}

func TestParseVerifier(t *testing.T) {
	t.Parallel()
	kp := newAuthority().DeriveKeypair(origin, "pw")

	v, err := signing.ParseVerifier("  " + kp.PublicKeyHex() + "\n")
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKeyHex(), v.PublicKeyHex())

	tests := []struct {
		name string
		key  string
		err  error
	}{
		{"not hex", "zz", signing.ErrInvalidPublicKey},
		{"too short", kp.PublicKeyHex()[:62], signing.ErrInvalidPublicKey},
		{"empty", "", signing.ErrInvalidPublicKey},
		{"identity point", "01" + string(bytes.Repeat([]byte("0"), 62)), signing.ErrWeakPublicKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := signing.ParseVerifier(tt.key)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestVerifier_CopiesKey(t *testing.T) {
	t.Parallel()
	kp := newAuthority().DeriveKeypair(origin, "pw")
	pub := kp.PublicKey()
	raw := pub[:]

	v, err := signing.NewVerifier(raw)
	require.NoError(t, err)
	raw[0] ^= 0xff

	assert.Equal(t, kp.PublicKeyHex(), v.PublicKeyHex())
}
