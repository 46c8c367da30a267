// Package v1handler implements the JSON endpoints of the polls API on top of
// the poll lifecycle engine and the identity directory.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/nailuj1992/polls-api/internal/identity"
	"github.com/nailuj1992/polls-api/internal/polls"
	"github.com/nailuj1992/polls-api/pkg/logger"
	"github.com/nailuj1992/polls-api/pkg/serrors"
)

const maxBodyBytes = 1 << 20

// Deps are the services behind the v1 endpoints.
type Deps struct {
	Polls polls.Lifecycle
	Users identity.Directory
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every v1 route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", h.handle(h.CreateUser))
	mux.HandleFunc("GET /api/users", h.handle(h.ListUsers))
	mux.HandleFunc("GET /api/users/{id}", h.handle(h.GetUser))

	mux.HandleFunc("POST /api/polls", h.handle(h.CreatePoll))
	mux.HandleFunc("GET /api/polls/{username}", h.handle(h.UserPolls))
	mux.HandleFunc("GET /api/polls/link/{link}", h.handle(h.PollByLink))
	mux.HandleFunc("POST /api/polls/answer/{link}", h.handle(h.AnswerPoll))
	mux.HandleFunc("PUT /api/polls/{link}", h.handle(h.EditPoll))
	mux.HandleFunc("DELETE /api/polls/{link}", h.handle(h.DeletePoll))
	mux.HandleFunc("GET /api/polls/{link}/answers/{username}", h.handle(h.PollAnswers))
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatus is an ErrorResponse with the status code it is written with.
type ErrorStatus struct {
	StatusCode int
	Response   ErrorResponse
}

func defaultMessage(kind serrors.Kind) string {
	switch kind {
	case serrors.ErrInvalidInput:
		return "invalid request"
	case serrors.ErrNotFound:
		return "resource not found"
	case serrors.ErrForbidden:
		return "forbidden"
	case serrors.ErrConflict:
		return "conflict"
	default:
		return "internal error"
	}
}

// NewError maps err to its status and client-facing body. Internal errors
// are logged and never expose their cause.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	kind := serrors.KindOf(err)
	res := &ErrorStatus{
		StatusCode: serrors.HTTPStatus(err),
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: defaultMessage(kind),
		},
	}

	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return res
	}

	logger.Debug(ctx, "request rejected", zap.Error(err))
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		res.Response.Message = se.Message()
	}

	return res
}

type endpoint func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) handle(fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			res := h.NewError(r.Context(), err)
			writeJSON(r.Context(), w, res.StatusCode, res.Response)
		}
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into dst. An empty body leaves dst untouched so the
// presence checks downstream report the missing fields.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return serrors.Wrap(serrors.ErrInvalidInput, err, "invalid request body")
}
