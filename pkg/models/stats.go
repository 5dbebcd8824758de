package models

// LevelCount is one row of the per-level breakdown.
type LevelCount struct {
	Level Level `json:"level" db:"level"`
	Count int   `json:"count" db:"count"`
}

// Statistics summarizes the collection and review progress.
type Statistics struct {
	TotalVerbs     int          `json:"total_verbs"`
	IrregularVerbs int          `json:"irregular_verbs"`
	RegularVerbs   int          `json:"regular_verbs"`
	ByLevel        []LevelCount `json:"by_level"`
	ReviewedVerbs  int          `json:"reviewed_verbs"`
	DueVerbs       int          `json:"due_verbs"`
	TotalCorrect   int          `json:"total_correct"`
	TotalIncorrect int          `json:"total_incorrect"`
	QuizzesTaken   int          `json:"quizzes_taken"`
}
