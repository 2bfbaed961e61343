package binder

import "net/http"

// Header binds request headers to struct fields tagged `header:"Name"`.
// Header names are matched case-insensitively and fields whose header is
// absent keep their zero value.
//
//	type WriteRequest struct {
//		Signature string `header:"notes-signature"`
//	}
func Header() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "header", r.Header.Values, ErrFailedToParseHeader)
	}
}
