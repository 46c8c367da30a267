package polls

import (
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/serrors"
)

const msgMissingFields = "missing required fields"

// PollInput is the payload of poll creation and edition. Username names the
// owner for creation and the caller for edition.
type PollInput struct {
	Title       string
	Description string
	Username    string
	Questions   []QuestionInput
}

// QuestionInput is a question to create; TypeCode must name an entry of the
// question type vocabulary.
type QuestionInput struct {
	Text     string
	TypeCode string
}

func (in PollInput) validate() error {
	if in.Title == "" || in.Username == "" || len(in.Questions) == 0 {
		return serrors.With(serrors.ErrInvalidInput, msgMissingFields)
	}
	for _, q := range in.Questions {
		if q.Text == "" || q.TypeCode == "" {
			return serrors.With(serrors.ErrInvalidInput, msgMissingFields)
		}
	}

	return nil
}

// AnswerInput is one submission for a poll. An empty Username records the
// answers anonymously.
type AnswerInput struct {
	Answers  []AnswerItem
	Username string
}

type AnswerItem struct {
	QuestionID domain.QuestionID
	Content    string
}

// AnswerResult acknowledges a recorded submission.
type AnswerResult struct {
	Count   int
	Message string
}
