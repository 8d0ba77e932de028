package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certprep/backend/internal/models"
	"github.com/certprep/backend/internal/srs"
)

func testQuestion(id int64, category string) *models.Question {
	return &models.Question{
		ID:            id,
		Category:      category,
		QuestionType:  models.TypeBasic,
		Text:          fmt.Sprintf("question %d", id),
		ChoiceA:       "a", ChoiceB: "b", ChoiceC: "c", ChoiceD: "d",
		CorrectAnswer: "A",
	}
}

func testPool(n int, category string) []*models.Question {
	pool := make([]*models.Question, 0, n)
	for i := 1; i <= n; i++ {
		pool = append(pool, testQuestion(int64(i), category))
	}
	return pool
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestSelectFreshOnlyWhenNothingIsDue(t *testing.T) {
	pool := testPool(100, "road")
	got := Select(nil, pool, models.QuizFilters{}, 10, 0.3, nil, testRNG())

	require.Len(t, got, 10)
	for _, s := range got {
		assert.False(t, s.IsReview)
	}
}

func TestSelectNeverExceedsRequestedSize(t *testing.T) {
	pool := testPool(50, "road")
	due := []srs.DueQuestion{
		{Question: testQuestion(201, "road"), DaysOverdue: 4},
		{Question: testQuestion(202, "road"), DaysOverdue: 2},
	}

	for _, size := range []int{1, 5, 10, 50} {
		got := Select(due, pool, models.QuizFilters{}, size, 0.3, nil, testRNG())
		assert.LessOrEqual(t, len(got), size, "size %d", size)
	}
}

func TestSelectReviewQuotaTakesMostOverdue(t *testing.T) {
	// Three due questions in "road", size 5, ratio 0.3: the quota is
	// floor(5*0.3)=1 slot, filled by the most overdue question.
	due := []srs.DueQuestion{
		{Question: testQuestion(201, "road"), DaysOverdue: 5},
		{Question: testQuestion(202, "road"), DaysOverdue: 2},
		{Question: testQuestion(203, "road"), DaysOverdue: 1},
	}
	pool := testPool(20, "road")

	got := Select(due, pool, models.QuizFilters{Category: "road"}, 5, 0.3, nil, testRNG())
	require.Len(t, got, 5)

	var reviews []int64
	for _, s := range got {
		if s.IsReview {
			reviews = append(reviews, s.Question.ID)
		}
	}
	assert.Equal(t, []int64{201}, reviews)
}

func TestSelectSkipsDueQuestionsFailingFilters(t *testing.T) {
	// A due question outside the filter is dropped from the quota, not
	// replaced by a less overdue one from another category.
	due := []srs.DueQuestion{
		{Question: testQuestion(201, "river"), DaysOverdue: 9},
		{Question: testQuestion(202, "road"), DaysOverdue: 1},
	}
	pool := testPool(20, "road")

	got := Select(due, pool, models.QuizFilters{Category: "road"}, 10, 0.3, nil, testRNG())

	var reviews []int64
	for _, s := range got {
		assert.Equal(t, "road", s.Question.Category)
		if s.IsReview {
			reviews = append(reviews, s.Question.ID)
		}
	}
	assert.Equal(t, []int64{202}, reviews)
}

func TestSelectNeverDuplicatesQuestions(t *testing.T) {
	// Question 5 is both due and in the fresh pool.
	pool := testPool(10, "road")
	due := []srs.DueQuestion{
		{Question: pool[4], DaysOverdue: 3},
	}

	got := Select(due, pool, models.QuizFilters{}, 10, 0.3, nil, testRNG())
	seen := make(map[int64]bool)
	for _, s := range got {
		assert.False(t, seen[s.Question.ID], "question %d selected twice", s.Question.ID)
		seen[s.Question.ID] = true
	}
}

func TestSelectShortPoolYieldsShortSession(t *testing.T) {
	pool := testPool(3, "road")
	got := Select(nil, pool, models.QuizFilters{}, 10, 0.3, nil, testRNG())
	assert.Len(t, got, 3)

	got = Select(nil, nil, models.QuizFilters{}, 10, 0.3, nil, testRNG())
	assert.Empty(t, got)
}

func TestSelectRespectsEveryFilter(t *testing.T) {
	pool := []*models.Question{
		{ID: 1, Category: "road", QuestionType: models.TypeBasic, CorrectAnswer: "A"},
		{ID: 2, Category: "road", QuestionType: models.TypeSpecialist, Department: models.DeptCivil, Year: 2024, CorrectAnswer: "A"},
		{ID: 3, Category: "road", QuestionType: models.TypeSpecialist, Department: models.DeptCivil, Year: 2023, CorrectAnswer: "A"},
		{ID: 4, Category: "river", QuestionType: models.TypeSpecialist, Department: models.DeptCivil, Year: 2024, CorrectAnswer: "A"},
	}
	filters := models.QuizFilters{
		Category:     "road",
		Department:   models.DeptCivil,
		QuestionType: models.TypeSpecialist,
		Year:         2024,
	}

	got := Select(nil, pool, filters, 10, 0.3, nil, testRNG())
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].Question.ID)
}

func TestSelectWeightedSamplingFavorsWeakCategories(t *testing.T) {
	// 10 road and 10 river questions; river is maximally weak. Over many
	// draws of 5, river should appear more often than road.
	var pool []*models.Question
	for i := 1; i <= 10; i++ {
		pool = append(pool, testQuestion(int64(i), "road"))
		pool = append(pool, testQuestion(int64(100+i), "river"))
	}
	weakness := map[string]float64{"river": 1.0}

	rng := testRNG()
	roadCount, riverCount := 0, 0
	for trial := 0; trial < 200; trial++ {
		got := Select(nil, pool, models.QuizFilters{}, 5, 0, weakness, rng)
		require.Len(t, got, 5)
		for _, s := range got {
			if s.Question.Category == "road" {
				roadCount++
			} else {
				riverCount++
			}
		}
	}
	assert.Greater(t, riverCount, roadCount)
}

func TestSelectZeroSizeReturnsNothing(t *testing.T) {
	pool := testPool(5, "road")
	assert.Empty(t, Select(nil, pool, models.QuizFilters{}, 0, 0.3, nil, testRNG()))
}
