package adaptive

import "testing"

func TestStoryModificationsPerEmotion(t *testing.T) {
	engine := NewBranchingEngine()

	testCases := []struct {
		emotion  Emotion
		branch   Branch
		modifier string
	}{
		{EmotionExcited, BranchChallenging, "increase_complexity"},
		{EmotionCurious, BranchEnergizing, "add_mysteries"},
		{EmotionConfident, BranchChallenging, "leadership_roles"},
		{EmotionFrustrated, BranchComforting, "reduce_complexity"},
		{EmotionBored, BranchEnergizing, "surprise_elements"},
		{EmotionNeutral, BranchEncouraging, "balanced_approach"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.emotion), func(t *testing.T) {
			enhanced := engine.StoryModifications(tc.emotion, map[string]interface{}{"theme": "dragons"})

			if enhanced["emotion_branch"] != string(tc.branch) {
				t.Errorf("Expected branch %s, got %v", tc.branch, enhanced["emotion_branch"])
			}
			if enhanced["emotion_state"] != string(tc.emotion) {
				t.Errorf("Expected emotion %s, got %v", tc.emotion, enhanced["emotion_state"])
			}
			mods, ok := enhanced["story_modifications"].(map[string]bool)
			if !ok {
				t.Fatal("Expected story_modifications map")
			}
			if !mods[tc.modifier] {
				t.Errorf("Expected modifier %s in %v", tc.modifier, mods)
			}
			if enhanced["theme"] != "dragons" {
				t.Error("Expected input params preserved")
			}
		})
	}
}

func TestStoryModificationsDoesNotMutateInput(t *testing.T) {
	engine := NewBranchingEngine()
	params := map[string]interface{}{"theme": "dragons"}

	engine.StoryModifications(EmotionExcited, params)

	if len(params) != 1 {
		t.Errorf("Input params mutated: %v", params)
	}
}

func TestUnknownEmotionFallsBackToNeutral(t *testing.T) {
	engine := NewBranchingEngine()

	enhanced := engine.StoryModifications(Emotion("ecstatic"), nil)
	if enhanced["emotion_branch"] != string(BranchEncouraging) {
		t.Errorf("Expected neutral branch for unknown emotion, got %v", enhanced["emotion_branch"])
	}

	if guidance := engine.PromptGuidance(Emotion("ecstatic")); guidance != promptGuidance[EmotionNeutral] {
		t.Error("Expected neutral guidance for unknown emotion")
	}
}

func TestPromptGuidanceNonEmpty(t *testing.T) {
	engine := NewBranchingEngine()

	for _, emotion := range append(emotionOrder, EmotionNeutral) {
		if engine.PromptGuidance(emotion) == "" {
			t.Errorf("Empty guidance for %s", emotion)
		}
	}
}
