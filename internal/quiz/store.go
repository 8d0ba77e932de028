package quiz

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/certprep/backend/internal/models"
	"github.com/certprep/backend/internal/srs"
)

// Store persists per-learner state: SRS entries, the append-only
// answer history, and the active quiz session.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── SRS entries ─────────────────────────────────────────

func (s *Store) GetSRSState(userID int64) (srs.State, error) {
	rows, err := s.db.Query(
		`SELECT question_id, level, last_review, next_review, correct_count, total_attempts
		 FROM srs_entries WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get srs state: %w", err)
	}
	defer rows.Close()

	state := srs.State{}
	for rows.Next() {
		var e srs.Entry
		if err := rows.Scan(&e.QuestionID, &e.Level, &e.LastReview, &e.NextReview,
			&e.CorrectCount, &e.TotalAttempts); err != nil {
			return nil, fmt.Errorf("scan srs entry: %w", err)
		}
		state[e.QuestionID] = &e
	}
	return state, rows.Err()
}

// GetSRSEntry returns one question's SRS entry, or nil if the learner
// has never answered it.
func (s *Store) GetSRSEntry(userID, questionID int64) (*srs.Entry, error) {
	var e srs.Entry
	err := s.db.QueryRow(
		`SELECT question_id, level, last_review, next_review, correct_count, total_attempts
		 FROM srs_entries WHERE user_id = $1 AND question_id = $2`,
		userID, questionID,
	).Scan(&e.QuestionID, &e.Level, &e.LastReview, &e.NextReview, &e.CorrectCount, &e.TotalAttempts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get srs entry: %w", err)
	}
	return &e, nil
}

func (s *Store) UpsertSRSEntry(userID int64, e *srs.Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO srs_entries (user_id, question_id, level, last_review, next_review, correct_count, total_attempts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, question_id) DO UPDATE
		 SET level = EXCLUDED.level, last_review = EXCLUDED.last_review,
		     next_review = EXCLUDED.next_review, correct_count = EXCLUDED.correct_count,
		     total_attempts = EXCLUDED.total_attempts`,
		userID, e.QuestionID, e.Level, e.LastReview, e.NextReview, e.CorrectCount, e.TotalAttempts,
	)
	if err != nil {
		return fmt.Errorf("upsert srs entry: %w", err)
	}
	return nil
}

// ── Answer history ──────────────────────────────────────

func (s *Store) RecordAnswer(rec models.AnswerRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO answer_history
		 (user_id, question_id, category, department, question_type, correct,
		  chosen_answer, correct_answer, answered_at, time_spent_seconds, srs_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.UserID, rec.QuestionID, rec.Category, string(rec.Department), string(rec.QuestionType),
		rec.Correct, rec.ChosenAnswer, rec.CorrectAnswer, rec.AnsweredAt,
		rec.TimeSpentSeconds, rec.SRSLevel,
	)
	if err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

func (s *Store) GetHistory(userID int64, correct *bool, page, pageSize int) ([]models.AnswerRecord, int, error) {
	where := `WHERE user_id = $1`
	args := []interface{}{userID}
	if correct != nil {
		where += ` AND correct = $2`
		args = append(args, *correct)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM answer_history `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	offset := (page - 1) * pageSize
	args = append(args, pageSize, offset)
	query := fmt.Sprintf(
		`SELECT id, user_id, question_id, category, department, question_type, correct,
		        chosen_answer, correct_answer, answered_at, time_spent_seconds, srs_level
		 FROM answer_history %s
		 ORDER BY answered_at DESC, id DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("get history: %w", err)
	}
	defer rows.Close()

	var records []models.AnswerRecord
	for rows.Next() {
		var r models.AnswerRecord
		var dept, qtype string
		if err := rows.Scan(&r.ID, &r.UserID, &r.QuestionID, &r.Category, &dept, &qtype,
			&r.Correct, &r.ChosenAnswer, &r.CorrectAnswer, &r.AnsweredAt,
			&r.TimeSpentSeconds, &r.SRSLevel); err != nil {
			return nil, 0, fmt.Errorf("scan history: %w", err)
		}
		r.Department = models.Department(dept)
		r.QuestionType = models.QuestionType(qtype)
		records = append(records, r)
	}
	return records, total, rows.Err()
}

// GetCategoryOutcomes returns each category's answer outcomes in
// chronological order, feeding the weak-area heuristic.
func (s *Store) GetCategoryOutcomes(userID int64) (map[string][]Outcome, error) {
	rows, err := s.db.Query(
		`SELECT category, correct, COALESCE(time_spent_seconds, 0)
		 FROM answer_history WHERE user_id = $1
		 ORDER BY answered_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get category outcomes: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[string][]Outcome)
	for rows.Next() {
		var category string
		var o Outcome
		if err := rows.Scan(&category, &o.Correct, &o.TimeSpentSeconds); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		byCategory[category] = append(byCategory[category], o)
	}
	return byCategory, rows.Err()
}

// ── Quiz sessions ───────────────────────────────────────

// SaveSession replaces the learner's active session. One active
// session per learner: starting a new quiz discards the previous one.
func (s *Store) SaveSession(sess *models.QuizSession) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM quiz_sessions WHERE user_id = $1`, sess.UserID); err != nil {
		return fmt.Errorf("discard previous session: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO quiz_sessions
		 (id, user_id, question_ids, review_ids, cursor, category, department, question_type, year, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sess.ID, sess.UserID, pq.Array(nonNilIDs(sess.QuestionIDs)), pq.Array(nonNilIDs(sess.ReviewIDs)), sess.Cursor,
		sess.Filters.Category, string(sess.Filters.Department), string(sess.Filters.QuestionType),
		sess.Filters.Year, sess.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return tx.Commit()
}

// nonNilIDs maps a nil id slice to an empty one. The session array
// columns are NOT NULL; a nil slice would marshal as SQL NULL.
func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// GetActiveSession returns the learner's current session, or nil if
// none exists.
func (s *Store) GetActiveSession(userID int64) (*models.QuizSession, error) {
	var sess models.QuizSession
	var questionIDs, reviewIDs pq.Int64Array
	var dept, qtype string

	err := s.db.QueryRow(
		`SELECT id, user_id, question_ids, review_ids, cursor, category, department, question_type, year, created_at
		 FROM quiz_sessions WHERE user_id = $1`,
		userID,
	).Scan(&sess.ID, &sess.UserID, &questionIDs, &reviewIDs, &sess.Cursor,
		&sess.Filters.Category, &dept, &qtype, &sess.Filters.Year, &sess.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}

	sess.QuestionIDs = questionIDs
	sess.ReviewIDs = reviewIDs
	sess.Filters.Department = models.Department(dept)
	sess.Filters.QuestionType = models.QuestionType(qtype)
	return &sess, nil
}

// SetCursor persists a new cursor position for the session.
func (s *Store) SetCursor(sessionID string, cursor int) error {
	_, err := s.db.Exec(
		`UPDATE quiz_sessions SET cursor = $1 WHERE id = $2`,
		cursor, sessionID,
	)
	if err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	return nil
}
