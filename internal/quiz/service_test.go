package quiz

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certprep/backend/internal/models"
	"github.com/certprep/backend/internal/srs"
)

func TestNewQuizSessionFreshLearnerHasNonNilIDSlices(t *testing.T) {
	// A learner with no SRS history gets a session with zero review
	// questions. Both id slices must still marshal as Postgres arrays,
	// not NULL, because the session columns are NOT NULL.
	pool := testPool(10, "road")
	selected := Select(nil, pool, models.QuizFilters{}, 10, 0.3, nil, testRNG())
	require.Len(t, selected, 10)

	sess := newQuizSession(7, models.QuizFilters{}, selected, time.Now())

	require.NotNil(t, sess.QuestionIDs)
	require.NotNil(t, sess.ReviewIDs)
	assert.Len(t, sess.QuestionIDs, 10)
	assert.Empty(t, sess.ReviewIDs)

	questionIDs, err := pq.Array(sess.QuestionIDs).Value()
	require.NoError(t, err)
	assert.NotNil(t, questionIDs)

	reviewIDs, err := pq.Array(sess.ReviewIDs).Value()
	require.NoError(t, err)
	assert.NotNil(t, reviewIDs, "empty review list must marshal as '{}', not NULL")
}

func TestNewQuizSessionTagsReviewQuestions(t *testing.T) {
	due := []srs.DueQuestion{
		{Question: testQuestion(201, "road"), DaysOverdue: 5},
	}
	pool := testPool(20, "road")
	selected := Select(due, pool, models.QuizFilters{}, 10, 0.3, nil, testRNG())

	sess := newQuizSession(7, models.QuizFilters{}, selected, time.Now())

	assert.Len(t, sess.QuestionIDs, 10)
	assert.Equal(t, []int64{201}, sess.ReviewIDs)
	assert.True(t, sess.IsReview(201))
}

func TestNonNilIDsMarshalsAsEmptyArray(t *testing.T) {
	got := nonNilIDs(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	value, err := pq.Array(got).Value()
	require.NoError(t, err)
	assert.NotNil(t, value)

	ids := []int64{3, 1}
	assert.Equal(t, ids, nonNilIDs(ids))
}
