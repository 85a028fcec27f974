package adaptive

import (
	"fmt"
	"sort"

	"story-service/internal/models"
)

// gapOrder fixes the tie-break for the continued-growth fallback:
// math beats vocabulary beats problem solving.
var gapOrder = []Focus{FocusMath, FocusVocabulary, FocusProblemSolving}

// RecommendationEngine ranks candidate (theme, focus) pairs by a composite
// confidence score.
type RecommendationEngine struct {
	interests *InterestGraph
}

func NewRecommendationEngine(interests *InterestGraph) *RecommendationEngine {
	return &RecommendationEngine{interests: interests}
}

// Generate returns up to five recommendations sorted by confidence
// descending. Recommendations pair the profile's top learning gaps with its
// top interest-graph themes.
func (e *RecommendationEngine) Generate(profile *models.LearnerProfile) []models.Recommendation {
	gaps := e.identifyGaps(profile)
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	themes := e.interests.Recommend(profile, 2)

	recommendations := make([]models.Recommendation, 0, len(gaps)*len(themes))
	for _, gap := range gaps {
		for _, theme := range themes {
			recommendations = append(recommendations, models.Recommendation{
				Theme:             theme,
				LearningFocus:     string(gap),
				DifficultyLevel:   profile.DifficultyLevel,
				Reason:            fmt.Sprintf("Strengthen %s skills with %s adventures", gap, theme),
				EstimatedDuration: estimateDuration(profile),
				ConfidenceScore:   e.confidenceScore(profile, theme, gap, gaps),
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].ConfidenceScore > recommendations[j].ConfidenceScore
	})
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

// identifyGaps returns focus areas behind age expectation. With no gaps it
// falls back to the strongest area so there is always something to grow.
func (e *RecommendationEngine) identifyGaps(profile *models.LearnerProfile) []Focus {
	m := profile.LearningMetrics
	age := float64(profile.Age)

	var gaps []Focus
	if m.MathLevel < age-3 {
		gaps = append(gaps, FocusMath)
	}
	if m.VocabularyLevel < age-4 {
		gaps = append(gaps, FocusVocabulary)
	}
	if m.ProblemSolvingLevel < age-4 {
		gaps = append(gaps, FocusProblemSolving)
	}
	if len(gaps) > 0 {
		return gaps
	}

	switch {
	case m.MathLevel >= m.VocabularyLevel && m.MathLevel >= m.ProblemSolvingLevel:
		return []Focus{FocusMath}
	case m.VocabularyLevel >= m.ProblemSolvingLevel:
		return []Focus{FocusVocabulary}
	default:
		return []Focus{FocusProblemSolving}
	}
}

func (e *RecommendationEngine) confidenceScore(profile *models.LearnerProfile, theme string, focus Focus, gaps []Focus) float64 {
	score := 0.5

	if weight, ok := profile.InterestGraph[theme]; ok {
		score += weight * 0.3
	}

	for _, gap := range gaps {
		if gap == focus {
			score += 0.2
			break
		}
	}

	relevant := 0
	correct := 0
	for _, in := range profile.InteractionHistory {
		if in.Theme == theme || NormalizeFocus(in.LearningFocus) == focus {
			relevant++
			if in.IsCorrect() {
				correct++
			}
		}
	}
	if relevant > 0 {
		score += float64(correct) / float64(relevant) * 0.2
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func estimateDuration(profile *models.LearnerProfile) int {
	base := 8.0
	ageFactor := float64(profile.Age-4) * 1.5
	difficultyFactor := float64(profile.DifficultyLevel) * 2
	return int(base + ageFactor + difficultyFactor)
}
