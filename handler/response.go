package handler

import (
	"net/http"
	"strconv"
)

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus responds with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

type bytesResponse struct {
	status      int
	contentType string
	body        []byte
}

func (b bytesResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", b.contentType)
	h.Set("Content-Length", strconv.Itoa(len(b.body)))
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(b.status)
	_, err := w.Write(b.body)
	return err
}

// Bytes responds 200 with body as application/octet-stream.
func Bytes(body []byte) Response {
	return bytesResponse{status: http.StatusOK, contentType: "application/octet-stream", body: body}
}

// Fail hands err to the error handler instead of rendering.
func Fail(err error) Response {
	return errorResponse{err: err}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}
