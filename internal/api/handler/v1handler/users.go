package v1handler

import (
	"net/http"
	"strconv"

	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/serrors"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	var req userRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	user, err := h.deps.Users.Create(r.Context(), req.toNewUser())
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusCreated, createUserResponse{
		Message: "User created successfully",
		User:    newUserResponse(*user),
	})

	return nil
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.deps.Users.List(r.Context())
	if err != nil {
		return err //nolint: wrapcheck
	}

	res := make([]userResponse, 0, len(users))
	for _, u := range users {
		res = append(res, newUserResponse(u))
	}
	writeJSON(r.Context(), w, http.StatusOK, res)

	return nil
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return serrors.Wrap(serrors.ErrInvalidInput, err, "invalid user id")
	}

	user, err := h.deps.Users.ByID(r.Context(), domain.UserID(id))
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusOK, newUserResponse(*user))

	return nil
}
