package notecipher

import "fmt"

const (
	// NonceSize is the AES-GCM-SIV nonce length.
	NonceSize = 12
	// SaltSize is the per-encryption key derivation salt length.
	SaltSize = 20
	// HeaderSize is the length of the nonce and salt prefix.
	HeaderSize = NonceSize + SaltSize
	// TagSize is the authentication tag length appended by the AEAD.
	TagSize = 16
	// MinFrameSize is the size of a frame holding an empty note.
	MinFrameSize = HeaderSize + TagSize
)

// SplitFrame returns views of the nonce, salt and sealed body of frame.
// The returned slices alias frame.
func SplitFrame(frame []byte) (nonce, salt, body []byte, err error) {
	if len(frame) < MinFrameSize {
		return nil, nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedFrame, len(frame), MinFrameSize)
	}
	return frame[:NonceSize], frame[NonceSize:HeaderSize], frame[HeaderSize:], nil
}
