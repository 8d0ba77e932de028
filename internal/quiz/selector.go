package quiz

import (
	"math"
	"math/rand"

	"github.com/certprep/backend/internal/models"
	"github.com/certprep/backend/internal/srs"
)

// Selected is one question chosen for a session, tagged with whether it
// came from the due-review quota or the fresh pool.
type Selected struct {
	Question *models.Question
	IsReview bool
}

// Select builds the ordered question list for a new quiz session.
//
// Review slots come first from the most-overdue due questions that
// satisfy the active filters; a due question failing a filter is
// skipped, not substituted. The review quota is size*ratio, rounded
// down. Remaining slots are filled from the filtered fresh pool,
// sampled without replacement — uniformly, or weighted toward weak
// categories when weakness scores are supplied. The combined list is
// shuffled so review and fresh items interleave.
//
// A pool smaller than the request yields a shorter session; an empty
// pool yields an empty list. Surfacing that to the user is the
// caller's job. Select has no side effects.
func Select(due []srs.DueQuestion, pool []*models.Question, filters models.QuizFilters,
	size int, ratio float64, weakness map[string]float64, rng *rand.Rand) []Selected {

	if size <= 0 {
		return nil
	}

	var selected []Selected
	picked := make(map[int64]bool)

	// Step 1: review quota. Due questions arrive most-overdue first.
	var eligible []srs.DueQuestion
	for _, d := range due {
		if filters.Match(d.Question) {
			eligible = append(eligible, d)
		}
	}
	reviewCount := int(math.Floor(float64(size) * ratio))
	if reviewCount > len(eligible) {
		reviewCount = len(eligible)
	}
	for _, d := range eligible[:reviewCount] {
		selected = append(selected, Selected{Question: d.Question, IsReview: true})
		picked[d.Question.ID] = true
	}

	// Step 2: fresh quota from the filtered pool, minus already-picked ids.
	var candidates []*models.Question
	for _, q := range pool {
		if picked[q.ID] || !filters.Match(q) {
			continue
		}
		candidates = append(candidates, q)
	}

	remaining := size - len(selected)
	var fresh []*models.Question
	if len(weakness) > 0 {
		fresh = weightedSample(candidates, remaining, weakness, rng)
	} else {
		fresh = uniformSample(candidates, remaining, rng)
	}
	for _, q := range fresh {
		selected = append(selected, Selected{Question: q})
	}

	// Step 3: interleave review and fresh.
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

func uniformSample(candidates []*models.Question, n int, rng *rand.Rand) []*models.Question {
	shuffled := make([]*models.Question, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// weightedSample draws n questions without replacement, each draw
// proportional to 1 + the weakness score of the question's category.
// Categories without a score get weight 1, so the bias degrades to
// uniform sampling when no history exists.
func weightedSample(candidates []*models.Question, n int, weakness map[string]float64, rng *rand.Rand) []*models.Question {
	remaining := make([]*models.Question, len(candidates))
	copy(remaining, candidates)

	if n > len(remaining) {
		n = len(remaining)
	}

	result := make([]*models.Question, 0, n)
	for len(result) < n {
		total := 0.0
		for _, q := range remaining {
			total += 1 + weakness[q.Category]
		}

		r := rng.Float64() * total
		idx := len(remaining) - 1
		acc := 0.0
		for i, q := range remaining {
			acc += 1 + weakness[q.Category]
			if r < acc {
				idx = i
				break
			}
		}

		result = append(result, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return result
}
