package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/ddrmem/allocator"
	"github.com/fulldump/ddrmem/service"
	"github.com/fulldump/ddrmem/session"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(s *session.Session) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := s.GetStatus()
			if status == session.StatusOpening {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: opening"))
				return
			}
			if status == session.StatusClosing {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: closing"))
				return
			}
			next(ctx)
		}
	}
}

// errorStatus maps an error to its HTTP status and a human description.
func errorStatus(ctx context.Context, err error) (int, string) {

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "user is not authenticated"
	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	case errors.As(err, &syntaxError), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, "Malformed JSON"
	case errors.As(err, &typeError):
		return http.StatusBadRequest, "Unexpected JSON type"
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, allocator.ErrInvalidArgument),
		errors.Is(err, allocator.ErrConfiguration):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, session.ErrWindowNotFound),
		errors.Is(err, allocator.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, session.ErrWindowAlreadyExists),
		errors.Is(err, session.ErrWindowBusy):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, allocator.ErrOutOfSpace):
		return http.StatusInsufficientStorage, "Not enough contiguous memory"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := errorStatus(ctx, err)

		w := box.GetResponse(ctx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}
