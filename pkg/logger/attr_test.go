package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealnote/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestReason(t *testing.T) {
	attr := logger.Reason(errors.New("signature mismatch"))
	require.Equal(t, "reason", attr.Key)
	assert.Equal(t, "signature mismatch", attr.Value.String())

	empty := logger.Reason(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestNoteKey(t *testing.T) {
	attr := logger.NoteKey("notes")
	require.Equal(t, "note_key", attr.Key)
	assert.Equal(t, "notes", attr.Value.String())
}

func TestStore(t *testing.T) {
	attr := logger.Store("redis")
	require.Equal(t, "store", attr.Key)
	assert.Equal(t, "redis", attr.Value.String())
}

func TestFrameBytes(t *testing.T) {
	attr := logger.FrameBytes(48)
	require.Equal(t, "frame_bytes", attr.Key)
	assert.Equal(t, int64(48), attr.Value.Int64())
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	attr := logger.Component("store")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "store", attr.Value.String())
}
