package srs

import (
	"sort"
	"time"

	"github.com/certprep/backend/internal/models"
)

// DueQuestion pairs a resolved question with how overdue it is.
type DueQuestion struct {
	Question    *models.Question
	DaysOverdue int
}

// FindDue scans the learner's SRS state and returns every question due
// at asOf, most overdue first. Entries whose question no longer
// resolves are skipped: content sets change between releases and stale
// SRS rows are not an error here. Ties on overdue days are broken by
// ascending question id so repeated calls with the same input produce
// identical output. The state is not mutated.
func FindDue(state State, resolve func(int64) (*models.Question, bool), asOf time.Time) []DueQuestion {
	var due []DueQuestion
	for id, e := range state {
		if !e.IsDue(asOf) {
			continue
		}
		q, ok := resolve(id)
		if !ok {
			continue
		}
		due = append(due, DueQuestion{Question: q, DaysOverdue: e.DaysOverdue(asOf)})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].DaysOverdue != due[j].DaysOverdue {
			return due[i].DaysOverdue > due[j].DaysOverdue
		}
		return due[i].Question.ID < due[j].Question.ID
	})
	return due
}
