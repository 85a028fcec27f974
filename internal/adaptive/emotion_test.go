package adaptive

import (
	"story-service/internal/models"
	"testing"
)

func TestDetectExcited(t *testing.T) {
	detector := NewEmotionDetector()

	interaction := &models.Interaction{
		Response:     "Wow! This is amazing! So cool! I love it! Yes! Fantastic!",
		Correct:      boolPtr(true),
		ResponseTime: floatPtr(2.0),
	}

	if got := detector.Detect(interaction, nil); got != EmotionExcited {
		t.Errorf("Expected excited, got %s", got)
	}
}

func TestDetectConfident(t *testing.T) {
	detector := NewEmotionDetector()

	interaction := &models.Interaction{
		Response:     "this is easy, I know it, definitely sure, of course, obviously",
		Correct:      boolPtr(true),
		ResponseTime: floatPtr(3.0),
	}

	if got := detector.Detect(interaction, nil); got != EmotionConfident {
		t.Errorf("Expected confident, got %s", got)
	}
}

func TestDetectCurious(t *testing.T) {
	detector := NewEmotionDetector()

	interaction := &models.Interaction{
		Response:     "Why? How? What? Where? Tell me more, this is interesting?",
		ResponseTime: floatPtr(12.0),
	}

	if got := detector.Detect(interaction, nil); got != EmotionCurious {
		t.Errorf("Expected curious, got %s", got)
	}
}

func TestDetectFrustratedWithMomentum(t *testing.T) {
	detector := NewEmotionDetector()

	interaction := &models.Interaction{
		Response:     "this is hard and difficult, i don't know, i'm confused and stuck, help",
		Correct:      boolPtr(false),
		ResponseTime: floatPtr(40.0),
	}

	// Without recent history the score sits just under the threshold.
	if got := detector.Detect(interaction, nil); got != EmotionNeutral {
		t.Errorf("Expected neutral without momentum, got %s", got)
	}

	// A frustrated streak boosts the same signals over the threshold.
	recent := []string{"neutral", "frustrated"}
	if got := detector.Detect(interaction, recent); got != EmotionFrustrated {
		t.Errorf("Expected frustrated with momentum, got %s", got)
	}
}

func TestDetectNeutralOnWeakSignals(t *testing.T) {
	detector := NewEmotionDetector()

	testCases := []struct {
		name        string
		interaction *models.Interaction
	}{
		{"plain answer", &models.Interaction{Response: "the dragon", ResponseTime: floatPtr(15.0)}},
		{"single keyword", &models.Interaction{Response: "that was cool", ResponseTime: floatPtr(15.0)}},
		{"no response text", &models.Interaction{ResponseTime: floatPtr(15.0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detector.Detect(tc.interaction, nil); got != EmotionNeutral {
				t.Errorf("Expected neutral, got %s", got)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	detector := NewEmotionDetector()

	interaction := &models.Interaction{
		Response:     "Wow! This is amazing! So cool! I love it! Yes! Fantastic!",
		Correct:      boolPtr(true),
		ResponseTime: floatPtr(2.0),
	}

	first := detector.Detect(interaction, nil)
	for i := 0; i < 20; i++ {
		if got := detector.Detect(interaction, nil); got != first {
			t.Fatalf("Detection not deterministic: %s then %s", first, got)
		}
	}
}

func TestEmotionManagerRingBuffer(t *testing.T) {
	manager := NewEmotionManager()
	profile := models.NewLearnerProfile("key", "Emma", 6)

	interaction := &models.Interaction{
		Theme:         "dragons",
		LearningFocus: "math",
		Response:      "ok",
	}
	for i := 0; i < 15; i++ {
		manager.Process(profile, interaction, nil)
	}

	if len(profile.EmotionMetrics.RecentEmotions) != 10 {
		t.Errorf("Expected ring buffer capped at 10, got %d", len(profile.EmotionMetrics.RecentEmotions))
	}
	if profile.EmotionMetrics.CurrentEmotion != string(EmotionNeutral) {
		t.Errorf("Expected neutral current emotion, got %s", profile.EmotionMetrics.CurrentEmotion)
	}
}

func TestEmotionManagerResult(t *testing.T) {
	manager := NewEmotionManager()
	profile := models.NewLearnerProfile("key", "Emma", 6)

	interaction := &models.Interaction{
		Theme:          "dragons",
		LearningFocus:  "math",
		Response:       "7",
		Correct:        boolPtr(true),
		ResponseTime:   floatPtr(5.0),
		StoryCompleted: true,
	}
	profile.InteractionHistory = append(profile.InteractionHistory, *interaction)

	result := manager.Process(profile, interaction, map[string]interface{}{"theme": "dragons"})

	if result.DetectedEmotion == "" {
		t.Error("Expected a detected emotion")
	}
	if result.StoryModifications["theme"] != "dragons" {
		t.Error("Expected input params carried into modifications")
	}
	if result.StoryModifications["emotion_state"] != result.DetectedEmotion {
		t.Error("Expected emotion_state to match the detected emotion")
	}
	if result.PromptGuidance == "" {
		t.Error("Expected prompt guidance text")
	}

	// First completed story unlocks the first achievement.
	found := false
	for _, a := range result.NewAchievements {
		if a.ID == "first_story_complete" {
			found = true
		}
	}
	if !found {
		t.Error("Expected first_story_complete unlock")
	}
}
