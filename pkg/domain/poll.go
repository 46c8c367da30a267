package domain

import "time"

// PollID uniquely identifies a poll.
type PollID int64

// QuestionID uniquely identifies a question.
type QuestionID int64

// Poll is a titled set of questions shared publicly through its Link.
type Poll struct {
	ID          PollID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Link is the server-generated public token of the poll. It never changes.
	Link string `json:"link"`
	// OwnerID is the identity that created the poll. It never changes.
	OwnerID UserID `json:"id_user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// IsOwnedBy reports whether userID owns the poll.
func (p Poll) IsOwnedBy(userID UserID) bool {
	return p.OwnerID == userID
}

// Question belongs to exactly one poll. Position is its 0-based place in the
// order the questions were submitted.
type Question struct {
	ID       QuestionID     `json:"id"`
	PollID   PollID         `json:"id_poll"`
	Text     string         `json:"text"`
	TypeID   QuestionTypeID `json:"type_field"`
	Position int            `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// QuestionDetail is a question with its resolved type.
type QuestionDetail struct {
	Question
	Type QuestionType
}

// PollDetail is a poll with its ordered questions and their resolved types.
type PollDetail struct {
	Poll
	Questions []QuestionDetail
}
