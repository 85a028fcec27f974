package adaptive

import (
	"story-service/internal/models"

	"github.com/montanaflynn/stats"
)

// DifficultyThresholds are the tuning knobs for long-run difficulty moves.
type DifficultyThresholds struct {
	SuccessRateUp   float64
	SuccessRateDown float64
	ResponseTimeMax float64
	EngagementMin   float64
}

// DifficultyAdjuster recomputes a profile's long-run difficulty level (1-4)
// from a rolling window of recent interactions.
type DifficultyAdjuster struct {
	thresholds DifficultyThresholds
}

func NewDifficultyAdjuster() *DifficultyAdjuster {
	return &DifficultyAdjuster{
		thresholds: DifficultyThresholds{
			SuccessRateUp:   0.85,
			SuccessRateDown: 0.60,
			ResponseTimeMax: 30.0,
			EngagementMin:   0.70,
		},
	}
}

// AnalyzePerformance returns the new difficulty level for the profile.
// Success rate and response time come from the last 5 interactions,
// engagement from the last 3. With no history the current level is kept.
func (a *DifficultyAdjuster) AnalyzePerformance(current int, history []models.Interaction) int {
	if len(history) == 0 {
		return current
	}

	successRate := recentSuccessRate(lastN(history, 5))
	responseTime := avgResponseTime(lastN(history, 5))
	engagement := engagementLevel(lastN(history, 3))

	switch {
	case successRate > a.thresholds.SuccessRateUp &&
		engagement > a.thresholds.EngagementMin &&
		responseTime < a.thresholds.ResponseTimeMax:
		return minInt(LevelExpert, current+1)
	case successRate < a.thresholds.SuccessRateDown || engagement < a.thresholds.EngagementMin:
		return maxInt(LevelBeginner, current-1)
	default:
		return current
	}
}

func recentSuccessRate(interactions []models.Interaction) float64 {
	if len(interactions) == 0 {
		return 0.5
	}
	correct := 0
	for _, in := range interactions {
		if in.IsCorrect() {
			correct++
		}
	}
	return float64(correct) / float64(len(interactions))
}

func avgResponseTime(interactions []models.Interaction) float64 {
	if len(interactions) == 0 {
		return 15.0
	}
	times := make([]float64, len(interactions))
	for i, in := range interactions {
		times[i] = in.ResponseTimeOr(15.0)
	}
	mean, err := stats.Mean(times)
	if err != nil {
		return 15.0
	}
	return mean
}

// engagementLevel scores each interaction by completion, response quality
// and session length, then averages across the window.
func engagementLevel(interactions []models.Interaction) float64 {
	if len(interactions) == 0 {
		return 0.5
	}
	scores := make([]float64, len(interactions))
	for i, in := range interactions {
		score := 0.0
		if in.StoryCompleted {
			score += 0.4
		}
		if in.EngagementOr(0) > 0.5 {
			score += 0.3
		}
		if in.SessionDuration > 300 {
			score += 0.3
		}
		scores[i] = score
	}
	mean, err := stats.Mean(scores)
	if err != nil {
		return 0.5
	}
	return mean
}

func lastN(interactions []models.Interaction, n int) []models.Interaction {
	if len(interactions) <= n {
		return interactions
	}
	return interactions[len(interactions)-n:]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
