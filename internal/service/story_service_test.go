package service

import (
	"context"
	"strings"
	"testing"

	"story-service/internal/repository"
)

func TestGenerateAdaptiveStoryFallback(t *testing.T) {
	profiles := NewProfileService(repository.NewMemoryProfileStore(), nil, nil)
	stories := NewStoryService(profiles, nil, nil)

	result, err := stories.GenerateAdaptiveStory(context.Background(), "Emma", 8, "dragons", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(result.Story, "Emma") {
		t.Errorf("Expected child name in story: %q", result.Story)
	}
	// Age 8 with fresh skill levels leaves math as the top gap.
	if result.LearningFocus != "math" {
		t.Errorf("Expected math focus from gap analysis, got %s", result.LearningFocus)
	}
	if result.ParentExplanation == "" {
		t.Error("Expected a parent explanation")
	}
	if len(result.VocabularyWords) == 0 {
		t.Error("Expected vocabulary words")
	}
	if result.DifficultyLevel != 1 {
		t.Errorf("Expected beginner difficulty for a fresh profile, got %d", result.DifficultyLevel)
	}

	// An explicit focus overrides the gap analysis.
	result, err = stories.GenerateAdaptiveStory(context.Background(), "Emma", 8, "pirates", "vocabulary")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.LearningFocus != "vocabulary" {
		t.Errorf("Expected vocabulary focus, got %s", result.LearningFocus)
	}
}

func TestComprehensionFor(t *testing.T) {
	profiles := NewProfileService(repository.NewMemoryProfileStore(), nil, nil)
	stories := NewStoryService(profiles, nil, nil)

	score := stories.ComprehensionFor("the magnificent dragon", []string{"magnificent", "treasure"})
	if score != 0.5 {
		t.Errorf("Expected 0.5, got %.2f", score)
	}
}
