package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sealnote/pkg/logger"
	"github.com/dmitrymomot/sealnote/pkg/requestid"
)

// ErrorInfo is the outcome of classifying an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    ErrInternalServerError.Key,
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs every error with the request id and answers with the
// HTTPError found in it, or 500 internal_server_error. Internal details never
// reach the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}
