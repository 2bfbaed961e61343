package binder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// DefaultMaxBodySize is the default limit for RawBody (1MB).
const DefaultMaxBodySize = 1 << 20

var bytesType = reflect.TypeOf([]byte(nil))

// RawBody reads the request body as-is into the []byte field tagged
// `body:"raw"`. Bodies larger than maxBytes fail with ErrBodyTooLarge; a
// non-positive maxBytes means DefaultMaxBodySize. Targets without such a
// field yield ErrBinderNotApplicable.
//
//	type WriteRequest struct {
//		Frame []byte `body:"raw"`
//	}
func RawBody(maxBytes int64) func(r *http.Request, v any) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(r *http.Request, v any) error {
		rv, err := structValue(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToReadBody, err)
		}
		field, ok := rawBodyField(rv)
		if !ok {
			return ErrBinderNotApplicable
		}

		if r.Body == nil || r.Body == http.NoBody {
			field.SetBytes([]byte{})
			return nil
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return errors.Join(ErrBodyTooLarge, err)
			}
			return errors.Join(ErrFailedToReadBody, err)
		}
		if int64(len(body)) > maxBytes {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytes)
		}

		field.SetBytes(body)
		return nil
	}
}

func rawBodyField(rv reflect.Value) (reflect.Value, bool) {
	rt := rv.Type()
	for i := range rv.NumField() {
		f := rt.Field(i)
		if f.Tag.Get("body") == "raw" && f.Type == bytesType && rv.Field(i).CanSet() {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}
