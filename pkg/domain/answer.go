package domain

import "time"

// AnswerID uniquely identifies an answer.
type AnswerID int64

// Answer is an append-only record of content submitted for a question.
// RespondentID is nil for anonymous submissions.
type Answer struct {
	ID           AnswerID   `json:"id"`
	QuestionID   QuestionID `json:"id_question"`
	Content      string     `json:"content"`
	RespondentID *UserID    `json:"id_user_answered"`

	CreatedAt time.Time `json:"created_at"`
}

// QuestionAnswers groups the answers recorded for one question.
type QuestionAnswers struct {
	Question Question
	Answers  []Answer
}

// Tally is an eventually consistent summary of the answers of a poll,
// refreshed in the background after every submission.
type Tally struct {
	PollID           PollID
	Answers          int64
	NamedRespondents int64
	LastAnsweredAt   time.Time
	RefreshedAt      time.Time
}

// PollAnswers is the owner's view of a poll's answers, grouped per question in
// question order. Tally is nil until the first refresh has run.
type PollAnswers struct {
	Poll      Poll
	Questions []QuestionAnswers
	Tally     *Tally
}
