package v1handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nailuj1992/polls-api/internal/identity"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/serrors"
)

var alice = domain.User{
	ID:           1,
	Name:         "Alice",
	Username:     "alice",
	Email:        "alice@example.com",
	PasswordHash: "$2a$10$hash",
}

func TestCreateUser(t *testing.T) {
	srv := newTestServer(t)

	srv.users.EXPECT().Create(gomock.Any(), identity.NewUser{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	}).Return(&alice, nil)

	rec := srv.do(http.MethodPost, "/api/users",
		`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{
		"message": "User created successfully",
		"user": {"id": 1, "name": "Alice", "username": "alice", "email": "alice@example.com"}
	}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "hash")
}

func TestCreateUser_Duplicate(t *testing.T) {
	srv := newTestServer(t)

	srv.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "email already exists"))

	rec := srv.do(http.MethodPost, "/api/users",
		`{"name":"Alice","username":"alice2","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"CONFLICT","message":"email already exists"}`, rec.Body.String())
}

func TestListUsers(t *testing.T) {
	srv := newTestServer(t)

	srv.users.EXPECT().List(gomock.Any()).Return([]domain.User{alice}, nil)

	rec := srv.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id": 1, "name": "Alice", "username": "alice", "email": "alice@example.com"}]`,
		rec.Body.String())
}

func TestListUsers_Empty(t *testing.T) {
	srv := newTestServer(t)

	srv.users.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := srv.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(srv *testServer)
		wantCode int
		wantBody string
	}{
		{
			name: "found",
			path: "/api/users/1",
			setup: func(srv *testServer) {
				srv.users.EXPECT().ByID(gomock.Any(), domain.UserID(1)).Return(&alice, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"id": 1, "name": "Alice", "username": "alice", "email": "alice@example.com"}`,
		},
		{
			name: "not found",
			path: "/api/users/42",
			setup: func(srv *testServer) {
				srv.users.EXPECT().ByID(gomock.Any(), domain.UserID(42)).
					Return(nil, serrors.With(serrors.ErrNotFound, "user not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"code":"NOT_FOUND","message":"user not found"}`,
		},
		{
			name:     "malformed id",
			path:     "/api/users/abc",
			setup:    func(*testServer) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":"INVALID_INPUT","message":"invalid user id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			tt.setup(srv)

			rec := srv.do(http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantCode, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
