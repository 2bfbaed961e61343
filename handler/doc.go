// Package handler provides typed HTTP handlers.
//
// A HandlerFunc receives a request struct already filled by binders and
// returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type WriteRequest struct {
//		Signature string `header:"notes-signature"`
//		Frame     []byte `body:"raw"`
//	}
//
//	func write(ctx handler.Context, req WriteRequest) handler.Response {
//		if err := svc.Write(ctx, req.Frame, req.Signature); err != nil {
//			return handler.Fail(handler.Error(handler.ErrBadRequest, err))
//		}
//		return handler.EmptyWithStatus(http.StatusOK)
//	}
//
//	r.Post("/notes", handler.Wrap(write,
//		handler.WithBinders[handler.Context, WriteRequest](binder.Header(), binder.RawBody(1<<20)),
//		handler.WithErrorHandler[handler.Context, WriteRequest](handler.NewErrorHandler(log)),
//	))
//
// Errors from binders, Fail responses and failed renders go to the
// ErrorHandler. NewErrorHandler logs them with the request id and replies with
// the status and key of the HTTPError they carry, or 500.
package handler
