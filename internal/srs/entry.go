package srs

import (
	"fmt"
	"time"
)

// MaxLevel is the highest SRS level. Levels move one step per answer:
// up on correct, down on wrong, clamped to [0, MaxLevel].
const MaxLevel = 5

// DefaultIntervals is the review schedule in days, indexed by level.
// Level 0 is due again the same day; level 5 waits a month.
var DefaultIntervals = []int{0, 1, 3, 7, 14, 30}

// ValidateIntervals checks that a configured interval table has one
// entry per level and is monotonically non-decreasing.
func ValidateIntervals(intervals []int) error {
	if len(intervals) != MaxLevel+1 {
		return fmt.Errorf("interval table must have %d entries, got %d", MaxLevel+1, len(intervals))
	}
	for i, d := range intervals {
		if d < 0 {
			return fmt.Errorf("interval[%d] = %d is negative", i, d)
		}
		if i > 0 && d < intervals[i-1] {
			return fmt.Errorf("interval table not monotonic: interval[%d]=%d < interval[%d]=%d",
				i, d, i-1, intervals[i-1])
		}
	}
	return nil
}

// Entry holds the spaced repetition state for one (learner, question)
// pair. Created on the first answer, mutated on every answer after
// that, never deleted.
type Entry struct {
	QuestionID    int64     `json:"question_id"`
	Level         int       `json:"level"`
	LastReview    time.Time `json:"last_review"`
	NextReview    time.Time `json:"next_review"`
	CorrectCount  int       `json:"correct_count"`
	TotalAttempts int       `json:"total_attempts"`
}

// IsDue reports whether the entry is due at or past its review date.
func (e *Entry) IsDue(asOf time.Time) bool {
	return !asOf.Before(e.NextReview)
}

// DaysOverdue returns how many whole days past due the entry is.
// Returns 0 if not yet due.
func (e *Entry) DaysOverdue(asOf time.Time) int {
	if asOf.Before(e.NextReview) {
		return 0
	}
	return int(asOf.Sub(e.NextReview).Hours() / 24.0)
}

// State is a learner's SRS state: one entry per answered question.
type State map[int64]*Entry

// Update applies one answer to the learner's SRS state and returns the
// updated entry. A missing entry is created at level 0 first. The
// caller must have validated questionID against the question bank;
// this function trusts it.
func Update(state State, questionID int64, correct bool, now time.Time, intervals []int) *Entry {
	e, ok := state[questionID]
	if !ok {
		e = &Entry{
			QuestionID: questionID,
			Level:      0,
			LastReview: now,
			NextReview: now,
		}
		state[questionID] = e
	}

	e.TotalAttempts++
	if correct {
		e.CorrectCount++
		if e.Level < MaxLevel {
			e.Level++
		}
	} else if e.Level > 0 {
		e.Level--
	}

	e.LastReview = now
	e.NextReview = now.AddDate(0, 0, intervals[e.Level])
	return e
}
