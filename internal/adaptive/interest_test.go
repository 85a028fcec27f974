package adaptive

import (
	"story-service/internal/models"
	"testing"
)

func TestInterestGraphUpdate(t *testing.T) {
	graph := NewInterestGraph()
	profile := models.NewLearnerProfile("key", "Emma", 6)

	graph.Update(profile, "dragons", 1.0)
	if abs(profile.InterestGraph["dragons"]-0.2) > 0.0001 {
		t.Errorf("Expected dragons weight 0.2, got %.4f", profile.InterestGraph["dragons"])
	}

	graph.Update(profile, "pirates", 0.5)
	// dragons decays, pirates blends in.
	if abs(profile.InterestGraph["dragons"]-0.19) > 0.0001 {
		t.Errorf("Expected dragons decayed to 0.19, got %.4f", profile.InterestGraph["dragons"])
	}
	if abs(profile.InterestGraph["pirates"]-0.1) > 0.0001 {
		t.Errorf("Expected pirates weight 0.1, got %.4f", profile.InterestGraph["pirates"])
	}
}

func TestInterestGraphRecommend(t *testing.T) {
	graph := NewInterestGraph()
	profile := models.NewLearnerProfile("key", "Emma", 6)

	// Empty graph falls back to the defaults.
	themes := graph.Recommend(profile, 2)
	if len(themes) != 2 || themes[0] != "dragons" || themes[1] != "pirates" {
		t.Errorf("Expected default themes, got %v", themes)
	}

	profile.InterestGraph["pirates"] = 0.9
	profile.InterestGraph["dragons"] = 0.4
	profile.InterestGraph["princesses"] = 0.4

	themes = graph.Recommend(profile, 3)
	if themes[0] != "pirates" {
		t.Errorf("Expected pirates first, got %v", themes)
	}
	// Equal weights tie-break alphabetically.
	if themes[1] != "dragons" || themes[2] != "princesses" {
		t.Errorf("Expected deterministic tie-break, got %v", themes)
	}
}
