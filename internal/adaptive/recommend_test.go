package adaptive

import (
	"reflect"
	"story-service/internal/models"
	"testing"
)

func TestGenerateRecommendations(t *testing.T) {
	engine := NewRecommendationEngine(NewInterestGraph())
	profile := models.NewLearnerProfile("key", "Emma", 8)
	profile.InterestGraph["dragons"] = 0.9
	profile.InterestGraph["pirates"] = 0.3

	recommendations := engine.Generate(profile)

	if len(recommendations) == 0 {
		t.Fatal("Expected recommendations")
	}
	if len(recommendations) > 5 {
		t.Errorf("Expected at most 5 recommendations, got %d", len(recommendations))
	}
	for i := 1; i < len(recommendations); i++ {
		if recommendations[i].ConfidenceScore > recommendations[i-1].ConfidenceScore {
			t.Error("Expected recommendations sorted by confidence descending")
		}
	}
	for _, r := range recommendations {
		if r.ConfidenceScore > 1.0 {
			t.Errorf("Confidence above 1.0: %.2f", r.ConfidenceScore)
		}
		if r.Theme != "dragons" && r.Theme != "pirates" {
			t.Errorf("Unexpected theme %s", r.Theme)
		}
		if r.Reason == "" {
			t.Error("Expected a reason string")
		}
	}
}

func TestRecommendationsIdempotent(t *testing.T) {
	engine := NewRecommendationEngine(NewInterestGraph())
	profile := models.NewLearnerProfile("key", "Emma", 7)
	profile.InterestGraph["dragons"] = 0.8

	first := engine.Generate(profile)
	second := engine.Generate(profile)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical recommendations without an intervening interaction")
	}
}

func TestIdentifyGaps(t *testing.T) {
	engine := NewRecommendationEngine(NewInterestGraph())

	testCases := []struct {
		name     string
		age      int
		math     float64
		vocab    float64
		problem  float64
		expected []Focus
	}{
		{"all behind at 8", 8, 1, 1, 1, []Focus{FocusMath, FocusVocabulary, FocusProblemSolving}},
		{"only math behind", 7, 1, 4, 4, []Focus{FocusMath}},
		{"none behind falls back to strongest", 5, 2, 3, 1, []Focus{FocusVocabulary}},
		{"fallback tie prefers math", 5, 2, 2, 2, []Focus{FocusMath}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := models.NewLearnerProfile("key", "Emma", tc.age)
			profile.LearningMetrics.MathLevel = tc.math
			profile.LearningMetrics.VocabularyLevel = tc.vocab
			profile.LearningMetrics.ProblemSolvingLevel = tc.problem

			got := engine.identifyGaps(profile)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected gaps %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestEstimateDuration(t *testing.T) {
	profile := models.NewLearnerProfile("key", "Emma", 6)
	profile.DifficultyLevel = 2

	// 8 + 1.5*(6-4) + 2*2 = 15
	if got := estimateDuration(profile); got != 15 {
		t.Errorf("Expected 15 minutes, got %d", got)
	}
}

func TestConfidenceScoreUsesHistory(t *testing.T) {
	engine := NewRecommendationEngine(NewInterestGraph())
	profile := models.NewLearnerProfile("key", "Emma", 8)
	profile.InterestGraph["dragons"] = 1.0

	for i := 0; i < 4; i++ {
		profile.InteractionHistory = append(profile.InteractionHistory, models.Interaction{
			Theme:         "dragons",
			LearningFocus: "math",
			Correct:       boolPtr(true),
		})
	}

	gaps := []Focus{FocusMath}
	// 0.5 + 1.0*0.3 + 0.2 (gap) + 1.0*0.2 (history) clamps at 1.0.
	score := engine.confidenceScore(profile, "dragons", FocusMath, gaps)
	if score != 1.0 {
		t.Errorf("Expected clamped confidence 1.0, got %.2f", score)
	}
}
