package questionbank

import (
	"fmt"
	"os"
	"sync"

	"github.com/certprep/backend/internal/models"
)

// Repository holds the loaded question set in memory. It is built once
// at startup and injected into handlers; readers see an immutable
// snapshot, and an explicit admin reload swaps the whole set atomically.
type Repository struct {
	mu        sync.RWMutex
	questions []models.Question
	byID      map[int64]*models.Question
	source    string
}

func NewRepository() *Repository {
	return &Repository{byID: make(map[int64]*models.Question)}
}

// LoadCSV replaces the repository contents with the questions parsed
// from the CSV file at path.
func (r *Repository) LoadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open question file: %w", err)
	}
	defer f.Close()

	questions, err := ParseCSV(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return r.Replace(questions, path)
}

// LoadSample loads the built-in sample set. Used as the fallback when
// the CSV load fails.
func (r *Repository) LoadSample() {
	// SampleQuestions is validated by tests; Replace cannot fail here.
	if err := r.Replace(SampleQuestions(), "builtin-sample"); err != nil {
		panic("questionbank: invalid built-in sample set: " + err.Error())
	}
}

// Replace validates the new set and swaps it in atomically.
func (r *Repository) Replace(questions []models.Question, source string) error {
	byID := make(map[int64]*models.Question, len(questions))
	for i := range questions {
		q := &questions[i]
		if q.ID <= 0 {
			return fmt.Errorf("question %d: non-positive id %d", i+1, q.ID)
		}
		if _, dup := byID[q.ID]; dup {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		if !models.ValidAnswers[q.CorrectAnswer] {
			return fmt.Errorf("question %d: correct answer %q is not one of A-D", q.ID, q.CorrectAnswer)
		}
		if !models.ValidQuestionTypes[q.QuestionType] {
			return fmt.Errorf("question %d: invalid question type %q", q.ID, q.QuestionType)
		}
		if q.Department != "" && !models.ValidDepartments[q.Department] {
			return fmt.Errorf("question %d: unknown department %q", q.ID, q.Department)
		}
		byID[q.ID] = q
	}

	r.mu.Lock()
	r.questions = questions
	r.byID = byID
	r.source = source
	r.mu.Unlock()
	return nil
}

// ByID resolves a question by id.
func (r *Repository) ByID(id int64) (*models.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byID[id]
	return q, ok
}

// All returns the full loaded set. The returned slice must be treated
// as read-only; a reload swaps in a fresh slice rather than mutating
// this one.
func (r *Repository) All() []models.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.questions
}

// Filter returns the questions matching every active filter.
func (r *Repository) Filter(f models.QuizFilters) []*models.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Question
	for i := range r.questions {
		q := &r.questions[i]
		if f.Match(q) {
			matched = append(matched, q)
		}
	}
	return matched
}

func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}

// Summary reports load counts for the admin endpoint.
func (r *Repository) Summary() models.BankSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := models.BankSummary{
		Total:        len(r.questions),
		ByType:       make(map[models.QuestionType]int),
		ByDepartment: make(map[models.Department]int),
		Source:       r.source,
	}
	categories := make(map[string]bool)
	for i := range r.questions {
		q := &r.questions[i]
		s.ByType[q.QuestionType]++
		if q.Department != "" {
			s.ByDepartment[q.Department]++
		}
		categories[q.Category] = true
	}
	s.CategoryCount = len(categories)
	return s
}
