package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/certprep/backend/internal/models"
	"github.com/certprep/backend/internal/questionbank"
	"github.com/certprep/backend/internal/srs"
)

var (
	ErrNoActiveSession    = errors.New("no active quiz session")
	ErrNoQuestions        = errors.New("no questions match the requested filters")
	ErrUnknownQuestion    = errors.New("unknown question id")
	ErrNotCurrentQuestion = errors.New("answer does not target the current question")
)

// Service runs quiz sessions: selection, answer evaluation, SRS
// scheduling and history recording.
type Service struct {
	store       *Store
	bank        *questionbank.Repository
	intervals   []int
	reviewRatio float64
	defaultSize int
	maxSize     int
	now         func() time.Time
	rng         *rand.Rand
}

func NewService(store *Store, bank *questionbank.Repository, intervals []int, reviewRatio float64, defaultSize, maxSize int) *Service {
	return &Service{
		store:       store,
		bank:        bank,
		intervals:   intervals,
		reviewRatio: reviewRatio,
		defaultSize: defaultSize,
		maxSize:     maxSize,
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartQuiz builds a new session for the learner and returns its first
// question. Any previous session is discarded.
func (s *Service) StartQuiz(userID int64, filters models.QuizFilters, size int) (*models.StartQuizResponse, error) {
	if size <= 0 {
		size = s.defaultSize
	}
	if size > s.maxSize {
		size = s.maxSize
	}

	state, err := s.store.GetSRSState(userID)
	if err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}
	due := srs.FindDue(state, s.bank.ByID, s.now())

	outcomes, err := s.store.GetCategoryOutcomes(userID)
	if err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}
	weakness := WeaknessScores(outcomes)

	pool := s.bank.Filter(filters)
	selected := Select(due, pool, filters, size, s.reviewRatio, weakness, s.rng)
	if len(selected) == 0 {
		return nil, ErrNoQuestions
	}

	sess := newQuizSession(userID, filters, selected, s.now())

	if err := s.store.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}

	first := selected[0].Question.ToQuizQuestion(selected[0].IsReview)
	return &models.StartQuizResponse{
		SessionID: sess.ID,
		Size:      len(sess.QuestionIDs),
		Position:  1,
		Question:  &first,
	}, nil
}

// newQuizSession builds the persisted session from a selection. The id
// slices are always non-nil: the session columns are NOT NULL arrays
// and a nil slice would marshal as SQL NULL.
func newQuizSession(userID int64, filters models.QuizFilters, selected []Selected, now time.Time) *models.QuizSession {
	sess := &models.QuizSession{
		ID:          uuid.NewString(),
		UserID:      userID,
		QuestionIDs: make([]int64, 0, len(selected)),
		ReviewIDs:   []int64{},
		Filters:     filters,
		CreatedAt:   now,
	}
	for _, sel := range selected {
		sess.QuestionIDs = append(sess.QuestionIDs, sel.Question.ID)
		if sel.IsReview {
			sess.ReviewIDs = append(sess.ReviewIDs, sel.Question.ID)
		}
	}
	return sess
}

// Current returns the question at the session cursor without advancing
// it. Repeated calls serve the same question.
func (s *Service) Current(userID int64) (*models.CurrentQuestionResponse, error) {
	sess, err := s.store.GetActiveSession(userID)
	if err != nil {
		return nil, fmt.Errorf("current question: %w", err)
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	resp := &models.CurrentQuestionResponse{
		SessionID: sess.ID,
		Size:      len(sess.QuestionIDs),
	}
	qid, ok := sess.CurrentQuestionID()
	if !ok {
		resp.Finished = true
		resp.Position = len(sess.QuestionIDs)
		return resp, nil
	}

	q, ok := s.bank.ByID(qid)
	if !ok {
		// Content set was replaced under the session. Treat the stale
		// question as unanswerable and end the session.
		resp.Finished = true
		resp.Position = len(sess.QuestionIDs)
		return resp, nil
	}

	question := q.ToQuizQuestion(sess.IsReview(qid))
	resp.Position = sess.Cursor + 1
	resp.Question = &question
	return resp, nil
}

// SubmitAnswer evaluates the learner's answer to the current question,
// updates its SRS entry, appends a history record and advances the
// session cursor.
func (s *Service) SubmitAnswer(userID int64, req models.AnswerRequest) (*models.AnswerResponse, error) {
	sess, err := s.store.GetActiveSession(userID)
	if err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	qid, ok := sess.CurrentQuestionID()
	if !ok {
		return nil, ErrNoActiveSession
	}
	if req.QuestionID != qid {
		q, found := s.bank.ByID(req.QuestionID)
		if !found || q == nil {
			return nil, ErrUnknownQuestion
		}
		return nil, ErrNotCurrentQuestion
	}

	q, ok := s.bank.ByID(qid)
	if !ok {
		return nil, ErrUnknownQuestion
	}

	now := s.now()
	answer := strings.ToUpper(strings.TrimSpace(req.Answer))
	correct := answer == q.CorrectAnswer

	entry, err := s.store.GetSRSEntry(userID, qid)
	if err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}
	state := srs.State{}
	if entry != nil {
		state[qid] = entry
	}
	updated := srs.Update(state, qid, correct, now, s.intervals)
	if err := s.store.UpsertSRSEntry(userID, updated); err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	rec := models.AnswerRecord{
		UserID:           userID,
		QuestionID:       qid,
		Category:         q.Category,
		Department:       q.Department,
		QuestionType:     q.QuestionType,
		Correct:          correct,
		ChosenAnswer:     answer,
		CorrectAnswer:    q.CorrectAnswer,
		AnsweredAt:       now,
		TimeSpentSeconds: req.TimeSpentSeconds,
		SRSLevel:         updated.Level,
	}
	if err := s.store.RecordAnswer(rec); err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	newCursor := sess.Cursor + 1
	if err := s.store.SetCursor(sess.ID, newCursor); err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	return &models.AnswerResponse{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Choices:       q.Choices(),
		SRS: &models.SRSSnapshot{
			Level:         updated.Level,
			NextReview:    updated.NextReview.Format("2006-01-02"),
			CorrectCount:  updated.CorrectCount,
			TotalAttempts: updated.TotalAttempts,
		},
		Position: newCursor,
		Size:     len(sess.QuestionIDs),
		Finished: newCursor >= len(sess.QuestionIDs),
	}, nil
}

// DueReview lists every question currently due for review, most
// overdue first.
func (s *Service) DueReview(userID int64) (*models.DueListResponse, error) {
	state, err := s.store.GetSRSState(userID)
	if err != nil {
		return nil, fmt.Errorf("due review: %w", err)
	}

	now := s.now()
	due := srs.FindDue(state, s.bank.ByID, now)

	resp := &models.DueListResponse{
		Due:   []models.DueQuestionView{},
		Total: len(due),
		AsOf:  now.Format(time.RFC3339),
	}
	for _, d := range due {
		resp.Due = append(resp.Due, models.DueQuestionView{
			Question:    d.Question.ToQuizQuestion(true),
			DaysOverdue: d.DaysOverdue,
		})
	}
	return resp, nil
}

// Stats aggregates the learner's answer history per category, paired
// with the weakness score that drives fresh-question sampling.
func (s *Service) Stats(userID int64) (*models.StatsResponse, error) {
	outcomes, err := s.store.GetCategoryOutcomes(userID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	resp := &models.StatsResponse{Categories: make(map[string]models.CategoryStat, len(outcomes))}
	for category, history := range outcomes {
		stat := categoryStat(history)
		resp.Categories[category] = stat
		resp.TotalAnswered += stat.Answered
		resp.TotalCorrect += stat.Correct
	}
	if resp.TotalAnswered > 0 {
		resp.OverallAccuracy = float64(resp.TotalCorrect) / float64(resp.TotalAnswered)
	}

	state, err := s.store.GetSRSState(userID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	resp.DueCount = len(srs.FindDue(state, s.bank.ByID, s.now()))
	return resp, nil
}

func categoryStat(history []Outcome) models.CategoryStat {
	stat := models.CategoryStat{Answered: len(history)}

	totalTime := 0.0
	for _, o := range history {
		if o.Correct {
			stat.Correct++
		}
		totalTime += o.TimeSpentSeconds
	}
	stat.Accuracy = float64(stat.Correct) / float64(len(history))
	stat.AvgTimeSeconds = totalTime / float64(len(history))

	recent := history
	if len(recent) > recentWindow {
		recent = history[len(history)-recentWindow:]
	}
	recentCorrect := 0
	for _, o := range recent {
		if o.Correct {
			recentCorrect++
		}
	}
	stat.RecentAccuracy = float64(recentCorrect) / float64(len(recent))
	stat.WeaknessScore = WeaknessScore(history)
	return stat
}

// History returns a page of the learner's answer records, newest
// first, optionally filtered by correctness.
func (s *Service) History(userID int64, correct *bool, page, pageSize int) (*models.HistoryListResponse, error) {
	records, total, err := s.store.GetHistory(userID, correct, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if records == nil {
		records = []models.AnswerRecord{}
	}
	return &models.HistoryListResponse{
		Records:  records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
