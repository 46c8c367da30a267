package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nailuj1992/polls-api/internal/api/handler/v1handler"
	mockidentity "github.com/nailuj1992/polls-api/internal/identity/mock"
	mockpolls "github.com/nailuj1992/polls-api/internal/polls/mock"
	"github.com/nailuj1992/polls-api/pkg/logger"
	"github.com/nailuj1992/polls-api/pkg/serrors"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testServer struct {
	mux   *http.ServeMux
	polls *mockpolls.MockLifecycle
	users *mockidentity.MockDirectory
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	srv := &testServer{
		mux:   http.NewServeMux(),
		polls: mockpolls.NewMockLifecycle(ctrl),
		users: mockidentity.NewMockDirectory(ctrl),
	}
	v1handler.New(v1handler.Deps{Polls: srv.polls, Users: srv.users}).Register(srv.mux)

	return srv
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	return rec
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_InvalidInput(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrInvalidInput, "missing required fields")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrInvalidInput.Error(), res.Response.Code)
	require.Equal(t, "missing required fields", res.Response.Message)
}

func TestNewError_SemanticWrap_Forbidden(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("owner 1, caller 2")
	err := serrors.Wrap(serrors.ErrForbidden, cause, "you are not the owner of the poll")
	res := h.NewError(ctx, err)
	require.Equal(t, 403, res.StatusCode)
	require.Equal(t, serrors.ErrForbidden.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "you are not the owner of the poll", res.Response.Message)
}

func TestNewError_ConflictIsBadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), fmt.Errorf("register: %w",
		serrors.With(serrors.ErrConflict, "username already exists")))
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrConflict.Error(), res.Response.Code)
	require.Equal(t, "username already exists", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.Wrap(serrors.ErrInternal, errors.New("db down"), "could not store poll"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestHandler_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/polls", `{"title": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"INVALID_INPUT","message":"invalid request body"}`, rec.Body.String())
}

func TestHandler_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPatch, "/api/polls/abc12345", `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// withMessage adds a "message" member to the JSON object body.
func withMessage(t *testing.T, body, message string) string {
	t.Helper()

	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &obj))
	obj["message"] = message
	out, err := json.Marshal(obj)
	require.NoError(t, err)

	return string(out)
}
