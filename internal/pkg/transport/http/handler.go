package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/tripwise/flight-engine/internal/pkg/exception"
)

// DecodeRequestFunc extracts a typed request from the incoming HTTP request.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes the endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// DecodeRequest decodes a JSON body into T and validates it via its Bind method.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	if binder, ok := any(req).(render.Binder); ok {
		if err := render.Bind(r, binder); err != nil {
			var appErr exception.ApplicationError
			if errors.As(err, &appErr) {
				return nil, err
			}

			// body did not decode at all
			return nil, exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "malformed request body",
				Cause:      err,
			}
		}

		return req, nil
	}

	if err := render.DecodeJSON(r.Body, req); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "malformed request body",
			Cause:      err,
		}
	}

	return req, nil
}

// MakeHandlerFunc adapts a go-kit endpoint plus decode/encode funcs into
// a plain http.HandlerFunc. Decode and endpoint errors both go through
// the common error encoder.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, err := decoder(ctx, r)
		if err != nil {
			ErrorResponse(ctx, err, w)

			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, w)

			return
		}

		if err := encoder(ctx, w, response); err != nil {
			ErrorResponse(ctx, err, w)
		}
	}
}
