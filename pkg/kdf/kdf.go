package kdf

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// KeySize is the length of every derived key in bytes.
const KeySize = 32

// Algorithm names accepted by ByName.
const (
	AlgorithmScrypt   = "scrypt"
	AlgorithmArgon2id = "argon2id"
)

// Deriver turns a salt and a password into a KeySize key.
// Implementations must be pure: equal inputs yield bit-identical output.
type Deriver interface {
	Derive(salt []byte, password string) [KeySize]byte
	Name() string
}

// ScryptParams holds scrypt cost parameters.
type ScryptParams struct {
	N int // CPU/memory cost, power of two greater than 1
	R int // block size
	P int // parallelization
}

// DefaultScryptParams matches the reference deployment: N=2^17, r=8, p=1.
var DefaultScryptParams = ScryptParams{N: 1 << 17, R: 8, P: 1}

// Argon2idParams holds Argon2id cost parameters.
type Argon2idParams struct {
	Time    uint32 // number of passes
	Memory  uint32 // memory in KiB
	Threads uint8
}

// DefaultArgon2idParams follows the RFC 9106 second recommended option.
var DefaultArgon2idParams = Argon2idParams{Time: 3, Memory: 64 * 1024, Threads: 4}

var defaultDeriver Deriver = MustScrypt(DefaultScryptParams)

// Default returns the scrypt deriver with DefaultScryptParams.
func Default() Deriver {
	return defaultDeriver
}

// Derive derives a key with the default deriver.
func Derive(salt []byte, password string) [KeySize]byte {
	return defaultDeriver.Derive(salt, password)
}

// ByName returns a deriver with default parameters for the named algorithm.
// An empty name selects scrypt.
func ByName(name string) (Deriver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmScrypt:
		return defaultDeriver, nil
	case AlgorithmArgon2id:
		return NewArgon2id(DefaultArgon2idParams)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Scrypt derives keys with scrypt.
type Scrypt struct {
	params ScryptParams
}

// NewScrypt validates params the same way scrypt.Key does and returns a deriver.
func NewScrypt(p ScryptParams) (*Scrypt, error) {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return nil, fmt.Errorf("%w: N must be > 1 and a power of 2", ErrInvalidParams)
	}
	if p.R <= 0 || p.P <= 0 {
		return nil, fmt.Errorf("%w: r and p must be positive", ErrInvalidParams)
	}
	if uint64(p.R)*uint64(p.P) >= 1<<30 || p.R > math.MaxInt/128/p.P || p.R > math.MaxInt/256 || p.N > math.MaxInt/128/p.R {
		return nil, fmt.Errorf("%w: parameters are too large", ErrInvalidParams)
	}
	return &Scrypt{params: p}, nil
}

// MustScrypt is like NewScrypt but panics on invalid parameters.
func MustScrypt(p ScryptParams) *Scrypt {
	s, err := NewScrypt(p)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements Deriver.
func (s *Scrypt) Name() string { return AlgorithmScrypt }

// Params returns the cost parameters.
func (s *Scrypt) Params() ScryptParams { return s.params }

// Derive implements Deriver.
func (s *Scrypt) Derive(salt []byte, password string) [KeySize]byte {
	key, err := scrypt.Key([]byte(password), salt, s.params.N, s.params.R, s.params.P, KeySize)
	if err != nil {
		// Parameters were validated in NewScrypt.
		panic(errors.Join(ErrInvalidParams, err))
	}
	return fixed(key)
}

// Argon2id derives keys with Argon2id.
type Argon2id struct {
	params Argon2idParams
}

// NewArgon2id validates params and returns a deriver.
func NewArgon2id(p Argon2idParams) (*Argon2id, error) {
	if p.Time < 1 {
		return nil, fmt.Errorf("%w: time must be at least 1", ErrInvalidParams)
	}
	if p.Threads < 1 {
		return nil, fmt.Errorf("%w: threads must be at least 1", ErrInvalidParams)
	}
	if p.Memory < 8*uint32(p.Threads) {
		return nil, fmt.Errorf("%w: memory must be at least 8 KiB per thread", ErrInvalidParams)
	}
	return &Argon2id{params: p}, nil
}

// Name implements Deriver.
func (a *Argon2id) Name() string { return AlgorithmArgon2id }

// Params returns the cost parameters.
func (a *Argon2id) Params() Argon2idParams { return a.params }

// Derive implements Deriver.
func (a *Argon2id) Derive(salt []byte, password string) [KeySize]byte {
	return fixed(argon2.IDKey([]byte(password), salt, a.params.Time, a.params.Memory, a.params.Threads, KeySize))
}

func fixed(key []byte) (out [KeySize]byte) {
	copy(out[:], key)
	clear(key)
	return out
}
