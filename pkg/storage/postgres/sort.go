package postgres

import (
	"slices"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

func sortQuestions(questions []domain.Question) {
	slices.SortFunc(questions, func(a, b domain.Question) int {
		if a.PollID != b.PollID {
			return int(a.PollID - b.PollID)
		}
		if a.Position != b.Position {
			return a.Position - b.Position
		}

		return int(a.ID - b.ID)
	})
}

func sortAnswers(answers []domain.Answer) {
	slices.SortFunc(answers, func(a, b domain.Answer) int {
		return int(a.ID - b.ID)
	})
}
