package domain

// QuestionTypeID identifies an entry of the question type vocabulary.
type QuestionTypeID int64

// QuestionType describes the expected shape of an answer, e.g. free text or
// multiple choice. The vocabulary is reference data seeded out of band.
type QuestionType struct {
	ID          QuestionTypeID `json:"id"`
	Code        string         `json:"code"`
	Description string         `json:"description"`
}
