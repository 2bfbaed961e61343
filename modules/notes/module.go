package notes

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sealnote/handler"
	"github.com/dmitrymomot/sealnote/pkg/binder"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
	notesvc "github.com/dmitrymomot/sealnote/svc/notes"
)

// DefaultMaxFrameBytes bounds POST /notes bodies.
const DefaultMaxFrameBytes = 1 << 20

var errWriteRejected = handler.NewHTTPError(http.StatusBadRequest, "write_rejected")

// Service is the note service the module exposes, see svc/notes.
type Service interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, next []byte, signatureHex string) error
}

// Module serves the note over HTTP:
//
//	GET  /notes  current frame as application/octet-stream, empty when unset
//	POST /notes  replace the frame; body is the frame, header notes-signature
//
// With a static filesystem, other GET requests serve files from it and fall
// back to index.html. Every other request is answered with 400.
type Module struct {
	svc           Service
	static        fs.FS
	maxFrameBytes int64
	writeLimiter  ratelimiter.RateLimiter
	errorHandler  handler.ErrorHandler[handler.Context]
}

// handleError maps binding failures to client errors before handing err to
// the configured error handler.
func (m *Module) handleError(ctx handler.Context, err error) {
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		err = handler.Error(handler.ErrRequestEntityTooLarge, err)
	case errors.Is(err, binder.ErrFailedToParseHeader), errors.Is(err, binder.ErrFailedToReadBody):
		err = handler.Error(handler.ErrBadRequest, err)
	}
	m.errorHandler(ctx, err)
}

type Option func(*Module)

// WithStatic serves the web client from fsys.
func WithStatic(fsys fs.FS) Option {
	return func(m *Module) { m.static = fsys }
}

// WithMaxFrameBytes limits the size of a written frame. Non-positive values
// keep DefaultMaxFrameBytes.
func WithMaxFrameBytes(n int64) Option {
	return func(m *Module) {
		if n > 0 {
			m.maxFrameBytes = n
		}
	}
}

// WithWriteLimiter rate limits POST /notes per client address.
func WithWriteLimiter(l ratelimiter.RateLimiter) Option {
	return func(m *Module) { m.writeLimiter = l }
}

// WithLogger logs request errors through log.
func WithLogger(log *slog.Logger) Option {
	return func(m *Module) {
		if log != nil {
			m.errorHandler = handler.NewErrorHandler(log)
		}
	}
}

func New(svc Service, opts ...Option) *Module {
	m := &Module{
		svc:           svc,
		maxFrameBytes: DefaultMaxFrameBytes,
		errorHandler:  handler.NewErrorHandler(slog.New(slog.DiscardHandler)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle returns the module router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/notes", handler.Wrap(m.read,
		handler.WithErrorHandler[handler.Context, struct{}](m.handleError),
	))
	write := []func(http.Handler) http.Handler{limitBody(m.maxFrameBytes)}
	if m.writeLimiter != nil {
		write = append([]func(http.Handler) http.Handler{
			ratelimiter.Middleware(m.writeLimiter, ratelimiter.ByClientIP("notes-write:")),
		}, write...)
	}
	r.With(write...).Post("/notes", handler.Wrap(m.write,
		handler.WithBinders[handler.Context, WriteRequest](
			binder.Header(),
			binder.RawBody(m.maxFrameBytes),
		),
		handler.WithErrorHandler[handler.Context, WriteRequest](m.handleError),
	))

	fallback := m.fallback()
	r.NotFound(fallback)
	r.MethodNotAllowed(fallback)

	return r
}

func (m *Module) read(ctx handler.Context, _ struct{}) handler.Response {
	frame, err := m.svc.Read(ctx)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.Bytes(frame)
}

// WriteRequest is the bound POST /notes request.
type WriteRequest struct {
	Signature string `header:"notes-signature"`
	Frame     []byte `body:"raw"`
}

func (m *Module) write(ctx handler.Context, req WriteRequest) handler.Response {
	err := m.svc.Write(ctx, req.Frame, req.Signature)
	switch {
	case err == nil:
		return handler.EmptyWithStatus(http.StatusOK)
	case errors.Is(err, notesvc.ErrWriteRejected):
		return handler.Fail(handler.Error(errWriteRejected, err))
	default:
		return handler.Fail(err)
	}
}

func (m *Module) fallback() http.HandlerFunc {
	badRequest := func(w http.ResponseWriter, r *http.Request) {
		m.handleError(handler.NewContext(w, r), handler.ErrBadRequest)
	}
	if m.static == nil {
		return badRequest
	}
	static := staticHandler(m.static)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			badRequest(w, r)
			return
		}
		static(w, r)
	}
}

// limitBody caps the request body so an oversized frame fails while being
// read instead of being buffered whole.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
