package quiz

// Outcome is one answered question's result for the weak-area
// heuristic: correctness plus time spent, in chronological order.
type Outcome struct {
	Correct          bool
	TimeSpentSeconds float64
}

// recentWindow is how many of the latest outcomes feed the
// recent-accuracy term.
const recentWindow = 10

// WeaknessScore computes a [0,1] weakness score for one category from
// the learner's outcome history (oldest first). Higher means weaker:
// more errors and slower answers raise the score. The score is scaled
// by a confidence factor that grows with sample size, so a category
// with two bad answers does not immediately dominate selection.
func WeaknessScore(history []Outcome) float64 {
	n := len(history)
	if n == 0 {
		return 0
	}

	correct := 0
	totalTime := 0.0
	for _, o := range history {
		if o.Correct {
			correct++
		}
		totalTime += o.TimeSpentSeconds
	}
	accuracy := float64(correct) / float64(n)

	recent := history
	if n > recentWindow {
		recent = history[n-recentWindow:]
	}
	recentCorrect := 0
	for _, o := range recent {
		if o.Correct {
			recentCorrect++
		}
	}
	recentAccuracy := float64(recentCorrect) / float64(len(recent))

	avgTime := totalTime / float64(n)
	timePenalty := avgTime/60.0 - 1
	if timePenalty < 0 {
		timePenalty = 0
	}
	if timePenalty > 1 {
		timePenalty = 1
	}

	score := 0.4*(1-accuracy) + 0.4*(1-recentAccuracy) + 0.3*timePenalty
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	confidence := float64(n) / 20.0
	if confidence > 1 {
		confidence = 1
	}
	return score * confidence
}

// WeaknessScores maps every category with history to its score.
func WeaknessScores(byCategory map[string][]Outcome) map[string]float64 {
	scores := make(map[string]float64, len(byCategory))
	for cat, history := range byCategory {
		scores[cat] = WeaknessScore(history)
	}
	return scores
}
