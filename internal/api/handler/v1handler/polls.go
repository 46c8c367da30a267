package v1handler

import (
	"net/http"
)

func (h *Handler) CreatePoll(w http.ResponseWriter, r *http.Request) error {
	var req pollRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	detail, err := h.deps.Polls.CreatePoll(r.Context(), req.toInput())
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusCreated, newPollResponse("Poll created successfully", detail))

	return nil
}

func (h *Handler) UserPolls(w http.ResponseWriter, r *http.Request) error {
	polls, err := h.deps.Polls.UserPolls(r.Context(), r.PathValue("username"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	res := make([]pollSummary, 0, len(polls))
	for _, p := range polls {
		res = append(res, pollSummary{ID: p.ID, Title: p.Title, Description: p.Description, Link: p.Link})
	}
	writeJSON(r.Context(), w, http.StatusOK, res)

	return nil
}

func (h *Handler) PollByLink(w http.ResponseWriter, r *http.Request) error {
	detail, err := h.deps.Polls.PollByLink(r.Context(), r.PathValue("link"))
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusOK, newPollDetailResponse(detail))

	return nil
}

func (h *Handler) AnswerPoll(w http.ResponseWriter, r *http.Request) error {
	var req answerRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	res, err := h.deps.Polls.AnswerPoll(r.Context(), r.PathValue("link"), req.toInput())
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusCreated, answerResponse{
		Message:           res.Message,
		QuestionsAnswered: res.Count,
	})

	return nil
}

// EditPoll answers 201 like creation does; clients depend on it.
func (h *Handler) EditPoll(w http.ResponseWriter, r *http.Request) error {
	var req pollRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	detail, err := h.deps.Polls.EditPoll(r.Context(), r.PathValue("link"), req.toInput())
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusCreated, newPollResponse("Poll modified successfully", detail))

	return nil
}

func (h *Handler) DeletePoll(w http.ResponseWriter, r *http.Request) error {
	var req deleteRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	if err := h.deps.Polls.DeletePoll(r.Context(), r.PathValue("link"), req.Username); err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusOK, messageResponse{Message: "Poll deleted successfully"})

	return nil
}

func (h *Handler) PollAnswers(w http.ResponseWriter, r *http.Request) error {
	answers, err := h.deps.Polls.PollAnswers(r.Context(), r.PathValue("link"), r.PathValue("username"))
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusOK, newPollAnswersResponse(answers))

	return nil
}
