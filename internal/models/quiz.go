package models

import "time"

// QuizSession is the typed session cursor: the ordered question list
// for the active quiz plus the current position. A new session replaces
// the previous one; the cursor only ever advances.
type QuizSession struct {
	ID          string      `json:"id"`
	UserID      int64       `json:"user_id"`
	QuestionIDs []int64     `json:"question_ids"`
	ReviewIDs   []int64     `json:"review_ids"`
	Cursor      int         `json:"cursor"`
	Filters     QuizFilters `json:"filters"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CurrentQuestionID returns the question id at the cursor, or false if
// the session is exhausted.
func (s *QuizSession) CurrentQuestionID() (int64, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.QuestionIDs) {
		return 0, false
	}
	return s.QuestionIDs[s.Cursor], true
}

// Exhausted reports whether every question in the session was answered.
func (s *QuizSession) Exhausted() bool {
	return s.Cursor >= len(s.QuestionIDs)
}

// IsReview reports whether the given question entered this session
// through the due-review quota rather than the fresh pool.
func (s *QuizSession) IsReview(questionID int64) bool {
	for _, id := range s.ReviewIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// AnswerRecord is one append-only answer history entry. Records are
// never mutated after creation.
type AnswerRecord struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"user_id"`
	QuestionID       int64        `json:"question_id"`
	Category         string       `json:"category"`
	Department       Department   `json:"department,omitempty"`
	QuestionType     QuestionType `json:"question_type"`
	Correct          bool         `json:"correct"`
	ChosenAnswer     string       `json:"chosen_answer"`
	CorrectAnswer    string       `json:"correct_answer"`
	AnsweredAt       time.Time    `json:"answered_at"`
	TimeSpentSeconds *float64     `json:"time_spent_seconds,omitempty"`
	SRSLevel         int          `json:"srs_level"`
}

// ── Serving types (strip answers) ────────────────────────

// QuizQuestion is the served form of a question: no correct answer,
// no explanation.
type QuizQuestion struct {
	ID           int64             `json:"id"`
	Category     string            `json:"category"`
	Department   Department        `json:"department,omitempty"`
	QuestionType QuestionType      `json:"question_type"`
	Year         int               `json:"year,omitempty"`
	Difficulty   string            `json:"difficulty,omitempty"`
	Text         string            `json:"text"`
	Choices      map[string]string `json:"choices"`
	IsReview     bool              `json:"is_review"`
}

// ToQuizQuestion strips answer data for serving.
func (q *Question) ToQuizQuestion(isReview bool) QuizQuestion {
	return QuizQuestion{
		ID:           q.ID,
		Category:     q.Category,
		Department:   q.Department,
		QuestionType: q.QuestionType,
		Year:         q.Year,
		Difficulty:   q.Difficulty,
		Text:         q.Text,
		Choices:      q.Choices(),
		IsReview:     isReview,
	}
}

// ── Request types ────────────────────────────────────────

type StartQuizRequest struct {
	Category     string `json:"category,omitempty"`
	Department   string `json:"department,omitempty"`
	QuestionType string `json:"question_type,omitempty"`
	Year         int    `json:"year,omitempty"`
	// Size 0 or omitted means the configured default session size.
	Size int `json:"size,omitempty"`
}

type AnswerRequest struct {
	QuestionID       int64    `json:"question_id"`
	Answer           string   `json:"answer"`
	TimeSpentSeconds *float64 `json:"time_spent_seconds,omitempty"`
}

// ── Response types ───────────────────────────────────────

type StartQuizResponse struct {
	SessionID string        `json:"session_id"`
	Size      int           `json:"size"`
	Position  int           `json:"position"`
	Question  *QuizQuestion `json:"question,omitempty"`
}

type CurrentQuestionResponse struct {
	SessionID string        `json:"session_id"`
	Position  int           `json:"position"`
	Size      int           `json:"size"`
	Finished  bool          `json:"finished"`
	Question  *QuizQuestion `json:"question,omitempty"`
}

type SRSSnapshot struct {
	Level         int    `json:"level"`
	NextReview    string `json:"next_review"`
	CorrectCount  int    `json:"correct_count"`
	TotalAttempts int    `json:"total_attempts"`
}

type AnswerResponse struct {
	Correct       bool              `json:"correct"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation,omitempty"`
	Choices       map[string]string `json:"choices"`
	SRS           *SRSSnapshot      `json:"srs,omitempty"`
	Position      int               `json:"position"`
	Size          int               `json:"size"`
	Finished      bool              `json:"finished"`
}

type DueQuestionView struct {
	Question    QuizQuestion `json:"question"`
	DaysOverdue int          `json:"days_overdue"`
}

type DueListResponse struct {
	Due   []DueQuestionView `json:"due"`
	Total int               `json:"total"`
	AsOf  string            `json:"as_of"`
}

type CategoryStat struct {
	Answered       int     `json:"answered"`
	Correct        int     `json:"correct"`
	Accuracy       float64 `json:"accuracy"`
	RecentAccuracy float64 `json:"recent_accuracy"`
	AvgTimeSeconds float64 `json:"avg_time_seconds"`
	WeaknessScore  float64 `json:"weakness_score"`
}

type StatsResponse struct {
	TotalAnswered   int                     `json:"total_answered"`
	TotalCorrect    int                     `json:"total_correct"`
	OverallAccuracy float64                 `json:"overall_accuracy"`
	DueCount        int                     `json:"due_count"`
	Categories      map[string]CategoryStat `json:"categories"`
}

type HistoryListResponse struct {
	Records  []AnswerRecord `json:"records"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
