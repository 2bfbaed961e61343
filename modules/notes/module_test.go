package notes_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notesmod "github.com/dmitrymomot/sealnote/modules/notes"
	"github.com/dmitrymomot/sealnote/pkg/kdf"
	"github.com/dmitrymomot/sealnote/pkg/notecipher"
	"github.com/dmitrymomot/sealnote/pkg/notestore"
	"github.com/dmitrymomot/sealnote/pkg/protocol"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
	"github.com/dmitrymomot/sealnote/pkg/signing"
	"github.com/dmitrymomot/sealnote/svc/notes"
)

const (
	origin   = "https://notes.example.com"
	password = "correct horse"
)

var (
	cheap = kdf.MustScrypt(kdf.ScryptParams{N: 1 << 10, R: 8, P: 1})
	enc   = notecipher.New(notecipher.WithDeriver(cheap))
	auth  = signing.NewAuthority(cheap)
)

func newServer(t *testing.T, opts ...notesmod.Option) (*httptest.Server, *notestore.Memory) {
	t.Helper()
	pub := auth.PublicKey(origin, password)
	v, err := signing.NewVerifier(pub[:])
	require.NoError(t, err)

	store := notestore.NewMemory()
	m := notesmod.New(notes.NewService(store, v), opts...)
	srv := httptest.NewServer(m.Handle())
	t.Cleanup(srv.Close)
	return srv, store
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func post(t *testing.T, url string, body []byte, sig string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	if sig != "" {
		req.Header.Set(protocol.SignatureHeader, sig)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, strings.TrimSpace(string(out))
}

func TestModule_ReadEmpty(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/notes")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestModule_WriteThenRead(t *testing.T) {
	t.Parallel()
	srv, store := newServer(t)

	first, err := protocol.Prepare(enc, auth, nil, "hello", origin, password)
	require.NoError(t, err)
	code, _ := post(t, srv.URL+"/notes", first.Frame, first.SignatureHex())
	require.Equal(t, http.StatusOK, code)

	code, body := get(t, srv.URL+"/notes")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, first.Frame, body)

	second, err := protocol.Prepare(enc, auth, body, "hello again", origin, password)
	require.NoError(t, err)
	code, _ = post(t, srv.URL+"/notes", second.Frame, second.SignatureHex())
	require.Equal(t, http.StatusOK, code)

	stored, err := store.Get(context.Background(), notes.DefaultKey)
	require.NoError(t, err)
	text, err := enc.Decrypt(stored, password)
	require.NoError(t, err)
	assert.Equal(t, "hello again", text)
}

func TestModule_WriteRejected(t *testing.T) {
	t.Parallel()

	valid, err := protocol.Prepare(enc, auth, nil, "hello", origin, password)
	require.NoError(t, err)
	wrong, err := protocol.Prepare(enc, auth, nil, "hello", origin, "wrong password")
	require.NoError(t, err)
	stale, err := protocol.Prepare(enc, auth, []byte("something else"), "hello", origin, password)
	require.NoError(t, err)

	tests := []struct {
		name string
		body []byte
		sig  string
	}{
		{name: "missing signature", body: valid.Frame},
		{name: "not hex", body: valid.Frame, sig: "zz"},
		{name: "short signature", body: valid.Frame, sig: "abcd"},
		{name: "wrong key", body: wrong.Frame, sig: wrong.SignatureHex()},
		{name: "stale previous", body: stale.Frame, sig: stale.SignatureHex()},
		{name: "body does not match signature", body: append([]byte{1}, valid.Frame...), sig: valid.SignatureHex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, store := newServer(t)

			code, msg := post(t, srv.URL+"/notes", tt.body, tt.sig)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "write_rejected", msg)

			stored, err := store.Get(context.Background(), notes.DefaultKey)
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestModule_FrameTooLarge(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t, notesmod.WithMaxFrameBytes(64))

	u, err := protocol.Prepare(enc, auth, nil, strings.Repeat("x", 128), origin, password)
	require.NoError(t, err)

	code, msg := post(t, srv.URL+"/notes", u.Frame, u.SignatureHex())
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Equal(t, "request_entity_too_large", msg)
}

type brokenService struct{}

func (brokenService) Read(context.Context) ([]byte, error) {
	return nil, errors.Join(notes.ErrStoreFailure, errors.New("connection refused"))
}

func (brokenService) Write(context.Context, []byte, string) error {
	return errors.Join(notes.ErrStoreFailure, errors.New("connection refused"))
}

func TestModule_StoreFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(notesmod.New(brokenService{}).Handle())
	t.Cleanup(srv.Close)

	code, body := get(t, srv.URL+"/notes")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal_server_error", strings.TrimSpace(string(body)))
	assert.NotContains(t, string(body), "connection refused")

	code, msg := post(t, srv.URL+"/notes", []byte("frame"), strings.Repeat("00", protocol.SignatureSize))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal_server_error", msg)
}

func TestModule_OtherRequests(t *testing.T) {
	t.Parallel()

	t.Run("without static files", func(t *testing.T) {
		t.Parallel()
		srv, _ := newServer(t)

		code, _ := get(t, srv.URL+"/")
		assert.Equal(t, http.StatusBadRequest, code)

		code, _ = get(t, srv.URL+"/app.js")
		assert.Equal(t, http.StatusBadRequest, code)

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/notes", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("with static files", func(t *testing.T) {
		t.Parallel()
		static := fstest.MapFS{
			"index.html":   {Data: []byte("<html>notes</html>")},
			"app.js":       {Data: []byte("console.log(1)")},
			"assets/x.css": {Data: []byte("body{}")},
		}
		srv, _ := newServer(t, notesmod.WithStatic(static))

		code, body := get(t, srv.URL+"/")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "<html>notes</html>", string(body))

		code, body = get(t, srv.URL+"/app.js")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "console.log(1)", string(body))

		code, body = get(t, srv.URL+"/assets/x.css")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "body{}", string(body))

		code, body = get(t, srv.URL+"/some/client/route")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "<html>notes</html>", string(body))

		code, body = get(t, srv.URL+"/assets")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "<html>notes</html>", string(body))

		code, _ = post(t, srv.URL+"/index.html", nil, "")
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestModule_WriteLimiter(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	srv, _ := newServer(t, notesmod.WithWriteLimiter(limiter))

	first, err := protocol.Prepare(enc, auth, nil, "hello", origin, password)
	require.NoError(t, err)
	code, _ := post(t, srv.URL+"/notes", first.Frame, first.SignatureHex())
	require.Equal(t, http.StatusOK, code)

	second, err := protocol.Prepare(enc, auth, first.Frame, "again", origin, password)
	require.NoError(t, err)
	code, msg := post(t, srv.URL+"/notes", second.Frame, second.SignatureHex())
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "too_many_requests", msg)

	code, _ = get(t, srv.URL+"/notes")
	assert.Equal(t, http.StatusOK, code, "reads are not limited")
}
