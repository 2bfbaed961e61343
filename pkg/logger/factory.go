package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/sealnote/pkg/environment"
)

// ErrInvalidLevel is returned by ParseLevel for names slog does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// Option configures New.
type Option func(*config)

type config struct {
	level      slog.Level
	text       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// WithEnvironment applies the defaults of env and tags every record with
// the service name. Development logs text at debug level; staging and
// production log JSON at info level.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(c *config) {
		switch env {
		case environment.Production, environment.Staging:
			c.level = slog.LevelInfo
			c.text = false
		default:
			c.level = slog.LevelDebug
			c.text = true
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// WithLevel overrides the minimum level. Apply it after WithEnvironment.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithOutput redirects records to w. A nil writer keeps stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithContextExtractors registers extractors run on every record.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// ParseLevel maps a LOG_LEVEL value such as "debug" or "WARN" to a level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Join(ErrInvalidLevel, err)
	}
	return level, nil
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a logger: JSON at info level on stdout unless options say
// otherwise.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler
	if cfg.text {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) == 0 {
		return slog.New(h)
	}
	return slog.New(contextHandler{Handler: h, extractors: cfg.extractors})
}
