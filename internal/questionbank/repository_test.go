package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certprep/backend/internal/models"
)

func TestReplaceRejectsBadSets(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
	}{
		{"duplicate id", []models.Question{
			{ID: 1, Category: "road", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "A"},
			{ID: 1, Category: "road", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "B"},
		}},
		{"zero id", []models.Question{
			{ID: 0, Category: "road", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "A"},
		}},
		{"bad answer letter", []models.Question{
			{ID: 1, Category: "road", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "E"},
		}},
		{"bad question type", []models.Question{
			{ID: 1, Category: "road", QuestionType: "advanced", Text: "q", CorrectAnswer: "A"},
		}},
		{"unknown department", []models.Question{
			{ID: 1, Category: "road", Department: "astrology", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "A"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository()
			assert.Error(t, repo.Replace(tt.questions, "test"))
		})
	}
}

func TestReplaceSwapsAtomically(t *testing.T) {
	repo := NewRepository()
	repo.LoadSample()
	before := repo.Count()
	require.Greater(t, before, 0)

	// A failed replace must leave the previous set intact.
	err := repo.Replace([]models.Question{{ID: -1}}, "broken")
	assert.Error(t, err)
	assert.Equal(t, before, repo.Count())

	err = repo.Replace([]models.Question{
		{ID: 100, Category: "road", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "A"},
	}, "new")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())

	_, ok := repo.ByID(100)
	assert.True(t, ok)
	_, ok = repo.ByID(1)
	assert.False(t, ok, "old set is gone after reload")
}

func TestFilterMatchesActiveFiltersOnly(t *testing.T) {
	repo := NewRepository()
	repo.LoadSample()

	road := repo.Filter(models.QuizFilters{Category: "road"})
	require.NotEmpty(t, road)
	for _, q := range road {
		assert.Equal(t, "road", q.Category)
	}

	civil := repo.Filter(models.QuizFilters{Department: models.DeptCivil})
	require.NotEmpty(t, civil)
	for _, q := range civil {
		assert.Equal(t, models.DeptCivil, q.Department)
	}

	all := repo.Filter(models.QuizFilters{Category: models.CategoryAll})
	assert.Len(t, all, repo.Count(), "ALL sentinel disables the category filter")

	specialist2024 := repo.Filter(models.QuizFilters{QuestionType: models.TypeSpecialist, Year: 2024})
	require.NotEmpty(t, specialist2024)
	for _, q := range specialist2024 {
		assert.Equal(t, models.TypeSpecialist, q.QuestionType)
		assert.Equal(t, 2024, q.Year)
	}

	none := repo.Filter(models.QuizFilters{Category: "nonexistent"})
	assert.Empty(t, none)
}

func TestYearFilterIgnoredForBasicQuestions(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Replace([]models.Question{
		{ID: 1, Category: "road", QuestionType: models.TypeBasic, Text: "q", CorrectAnswer: "A"},
		{ID: 2, Category: "road", QuestionType: models.TypeSpecialist, Year: 2023, Text: "q", CorrectAnswer: "A"},
		{ID: 3, Category: "road", QuestionType: models.TypeSpecialist, Year: 2024, Text: "q", CorrectAnswer: "A"},
	}, "test"))

	got := repo.Filter(models.QuizFilters{Year: 2024})
	ids := make([]int64, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	assert.ElementsMatch(t, []int64{1, 3}, ids, "year only constrains specialist questions")
}

func TestSummaryCountsLoadedSet(t *testing.T) {
	repo := NewRepository()
	repo.LoadSample()

	s := repo.Summary()
	assert.Equal(t, repo.Count(), s.Total)
	assert.Equal(t, "builtin-sample", s.Source)
	assert.Greater(t, s.ByType[models.TypeBasic], 0)
	assert.Greater(t, s.ByType[models.TypeSpecialist], 0)
	assert.Greater(t, s.CategoryCount, 1)

	total := 0
	for _, n := range s.ByType {
		total += n
	}
	assert.Equal(t, s.Total, total)
}

func TestSampleSetIsValid(t *testing.T) {
	repo := NewRepository()
	assert.NotPanics(t, repo.LoadSample)
	assert.Greater(t, repo.Count(), 0)
}
