// Package binder fills typed request structs for handler.Wrap.
//
// Header copies request headers into fields tagged `header:"name"`, converting
// to string, integer, boolean, pointer and slice fields. RawBody copies the
// unparsed request body into a []byte field tagged `body:"raw"`, bounded by a
// byte limit.
//
//	type WriteRequest struct {
//		Signature string `header:"notes-signature"`
//		Frame     []byte `body:"raw"`
//	}
//
//	http.HandleFunc("/notes", handler.Wrap(write,
//		handler.WithBinders[handler.Context, WriteRequest](
//			binder.Header(),
//			binder.RawBody(1<<20),
//		),
//	))
//
// Binders return errors joined with the package sentinels so callers can map
// them with errors.Is; ErrBodyTooLarge is the one most handlers care about.
package binder
