package notes

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/sealnote/pkg/logger"
	"github.com/dmitrymomot/sealnote/pkg/protocol"
)

// DefaultKey is the store key holding the note.
const DefaultKey = "notes"

// Service reads and conditionally writes the note.
type Service struct {
	store    Store
	verifier Verifier
	key      string
	log      *slog.Logger

	// mu serializes get-verify-set for stores without CompareAndSwap.
	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithKey sets the store key. Empty keys are ignored.
func WithKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used to report rejected writes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService returns a Service over store trusting verifier.
func NewService(store Store, verifier Verifier, opts ...Option) *Service {
	s := &Service{
		store:    store,
		verifier: verifier,
		key:      DefaultKey,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the store key the service operates on.
func (s *Service) Key() string { return s.key }

// Read returns the stored frame, or an empty slice when there is none.
func (s *Service) Read(ctx context.Context) ([]byte, error) {
	frame, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}
	if frame == nil {
		frame = []byte{}
	}
	return frame, nil
}

// Write replaces the stored frame with next if signatureHex is a valid
// signature over current ‖ next.
func (s *Service) Write(ctx context.Context, next []byte, signatureHex string) error {
	sig, err := protocol.DecodeSignature(signatureHex)
	if err != nil {
		return s.reject(ctx, err)
	}

	if sw, ok := s.store.(Swapper); ok {
		return s.swap(ctx, sw, next, sig)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(ctx, s.key)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if err := s.verifier.Verify(protocol.Message(current, next), sig); err != nil {
		return s.reject(ctx, err)
	}
	if err := s.store.Set(ctx, s.key, next); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	s.committed(ctx, next)
	return nil
}

func (s *Service) swap(ctx context.Context, sw Swapper, next, sig []byte) error {
	current, err := s.store.Get(ctx, s.key)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if err := s.verifier.Verify(protocol.Message(current, next), sig); err != nil {
		return s.reject(ctx, err)
	}
	swapped, err := sw.CompareAndSwap(ctx, s.key, current, next)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if !swapped {
		return s.reject(ctx, ErrConflict)
	}
	s.committed(ctx, next)
	return nil
}

func (s *Service) reject(ctx context.Context, cause error) error {
	s.log.WarnContext(ctx, "note write rejected",
		logger.NoteKey(s.key),
		logger.Reason(cause),
		logger.Component("notes"),
	)
	return errors.Join(ErrWriteRejected, cause)
}

func (s *Service) committed(ctx context.Context, next []byte) {
	s.log.InfoContext(ctx, "note write committed",
		logger.NoteKey(s.key),
		logger.FrameBytes(len(next)),
		logger.Component("notes"),
	)
}
