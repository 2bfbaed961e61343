package notes

import "context"

// Store is the persistence engine. Get returns nil and no error for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Swapper is implemented by stores with an atomic conditional set.
// CompareAndSwap stores next only if the current value equals old byte for
// byte, an absent key being equal to an empty old. It reports whether the
// swap happened.
type Swapper interface {
	CompareAndSwap(ctx context.Context, key string, old, next []byte) (bool, error)
}

// Verifier checks a signature against the trusted public key.
// *signing.Verifier implements it.
type Verifier interface {
	Verify(message, signature []byte) error
}
