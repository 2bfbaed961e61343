package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Reason records why an operation was refused under the key "reason".
// Unlike Error it is meant for expected rejections, not failures.
// If err is nil, it returns an empty Attr.
func Reason(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("reason", err.Error())
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// NoteKey records the storage key of the note under the key "note_key".
func NoteKey(key string) slog.Attr {
	return slog.String("note_key", key)
}

// Store records the storage backend name under the key "store".
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// FrameBytes records the size of an encrypted frame under the key "frame_bytes".
func FrameBytes(n int) slog.Attr {
	return slog.Int("frame_bytes", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
