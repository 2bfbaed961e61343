package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealnote/handler"
	"github.com/dmitrymomot/sealnote/pkg/binder"
	"github.com/dmitrymomot/sealnote/pkg/requestid"
)

type writeRequest struct {
	Signature string `header:"notes-signature"`
	Frame     []byte `body:"raw"`
}

func TestWrap_BindsRequest(t *testing.T) {
	t.Parallel()

	var got writeRequest
	h := handler.Wrap(func(ctx handler.Context, req writeRequest) handler.Response {
		got = req
		return handler.EmptyWithStatus(http.StatusOK)
	}, handler.WithBinders[handler.Context, writeRequest](binder.Header(), binder.RawBody(16)))

	r := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader("frame"))
	r.Header.Set("notes-signature", "ab")
	rec := httptest.NewRecorder()
	h(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ab", got.Signature)
	assert.Equal(t, []byte("frame"), got.Frame)
}

func TestWrap_SkipsNotApplicableBinder(t *testing.T) {
	t.Parallel()

	type headersOnly struct {
		Signature string `header:"notes-signature"`
	}
	called := false
	h := handler.Wrap(func(ctx handler.Context, req headersOnly) handler.Response {
		called = true
		return handler.Empty()
	}, handler.WithBinders[handler.Context, headersOnly](binder.RawBody(0), binder.Header()))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader("x")))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWrap_BinderErrorStopsHandler(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Wrap(func(ctx handler.Context, req writeRequest) handler.Response {
		called = true
		return handler.Empty()
	}, handler.WithBinders[handler.Context, writeRequest](
		func(r *http.Request, v any) error {
			return handler.Error(handler.ErrRequestEntityTooLarge, binder.ErrBodyTooLarge)
		},
	))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/notes", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_entity_too_large")
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var handled error
	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return nil
	}, handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
		handled = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, handled, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		order = append(order, "handler")
		return handler.Empty()
	}, handler.WithDecorators(mark("outer"), mark("inner")))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Bytes([]byte{0, 1, 2}).Render(rec, httptest.NewRequest(http.MethodGet, "/notes", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, []byte{0, 1, 2}, rec.Body.Bytes())
}

func TestBytes_Empty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Bytes(nil).Render(rec, httptest.NewRequest(http.MethodGet, "/notes", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("Content-Length"))
	assert.Empty(t, rec.Body.Bytes())
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{
			name:       "http error with cause",
			err:        handler.Error(handler.NewHTTPError(http.StatusBadRequest, "write_rejected"), errors.New("signature mismatch")),
			wantStatus: http.StatusBadRequest,
			wantBody:   "write_rejected",
			wantLevel:  "WARN",
		},
		{
			name:       "plain error",
			err:        errors.New("redis: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal_server_error",
			wantLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			log := slog.New(slog.NewTextHandler(buf, nil))
			eh := handler.NewErrorHandler(log)

			r := httptest.NewRequest(http.MethodPost, "/notes", nil)
			r = r.WithContext(requestid.WithContext(r.Context(), "req-42"))
			rec := httptest.NewRecorder()

			eh(handler.NewContext(rec, r), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			assert.NotContains(t, rec.Body.String(), "redis")
			assert.Contains(t, buf.String(), "level="+tt.wantLevel)
			assert.Contains(t, buf.String(), "request_id=req-42")
		})
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return handler.Fail(handler.ErrNotFound)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(requestid.WithContext(r.Context(), "abc"))
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, r)
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.Equal(t, "abc", requestid.FromContext(ctx))
	assert.Nil(t, ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
}
