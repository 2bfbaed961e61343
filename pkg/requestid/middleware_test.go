package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealnote/pkg/requestid"
)

// echoID serves the request id seen in the handler's context as the body.
var echoID = requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(requestid.FromContext(r.Context())))
}))

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sent  string
		reuse bool
	}{
		{name: "none sent", sent: ""},
		{name: "uuid", sent: "550e8400-e29b-41d4-a716-446655440000", reuse: true},
		{name: "cli id", sent: "notes_put-42", reuse: true},
		{name: "longest accepted", sent: strings.Repeat("a", 128), reuse: true},
		{name: "too long", sent: strings.Repeat("a", 129)},
		{name: "space", sent: "notes put"},
		{name: "slash", sent: "notes/put"},
		{name: "markup", sent: "<script>"},
		{name: "header injection", sent: "id\r\nX-Evil: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/notes", nil)
			if tt.sent != "" {
				req.Header.Set(requestid.Header, tt.sent)
			}
			rec := httptest.NewRecorder()
			echoID.ServeHTTP(rec, req)

			got := rec.Header().Get(requestid.Header)
			require.NotEmpty(t, got)
			assert.Equal(t, got, rec.Body.String(), "context and response header must agree")
			if tt.reuse {
				assert.Equal(t, tt.sent, got)
			} else {
				assert.NotEqual(t, tt.sent, got)
			}
		})
	}

	t.Run("fresh id per request", func(t *testing.T) {
		t.Parallel()
		first, second := httptest.NewRecorder(), httptest.NewRecorder()
		echoID.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/notes", nil))
		echoID.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/notes", nil))
		assert.NotEqual(t, first.Body.String(), second.Body.String())
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	extract := requestid.LoggerExtractor()
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	log.Warn("write rejected", attr)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])
}

func TestTransport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(echoID)
	t.Cleanup(srv.Close)
	client := &http.Client{Transport: requestid.Transport(nil)}

	do := func(t *testing.T, req *http.Request) string {
		t.Helper()
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body bytes.Buffer
		_, err = body.ReadFrom(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, resp.Header.Get(requestid.Header), body.String())
		return body.String()
	}

	t.Run("sends id from context", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "cli-trace-1")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/notes", nil)
		require.NoError(t, err)

		assert.Equal(t, "cli-trace-1", do(t, req))
		assert.Empty(t, req.Header.Get(requestid.Header), "caller request must not be mutated")
	})

	t.Run("keeps explicit header", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "from-context")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/notes", nil)
		require.NoError(t, err)
		req.Header.Set(requestid.Header, "explicit")

		assert.Equal(t, "explicit", do(t, req))
	})

	t.Run("generates id when context has none", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/notes", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, do(t, req))
	})
}
