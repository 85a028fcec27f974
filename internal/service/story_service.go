package service

import (
	"context"
	"log"

	"story-service/internal/adaptive"
	"story-service/internal/models"
	"story-service/internal/story"
)

// StoryResult is one complete generated adventure plus the adaptive choices
// behind it, including the explanation shown to parents.
type StoryResult struct {
	Story             string                 `json:"story"`
	ParentExplanation string                 `json:"parent_explanation"`
	Theme             string                 `json:"theme"`
	LearningFocus     string                 `json:"learning_focus"`
	DifficultyLevel   int                    `json:"difficulty_level"`
	LearningStyle     string                 `json:"learning_style"`
	VocabularyWords   []string               `json:"vocabulary_words"`
	Parameters        models.StoryParameters `json:"parameters"`
}

// StoryService produces single-shot adaptive adventures, as opposed to the
// question-by-question sessions run by SessionService.
type StoryService struct {
	profiles  *ProfileService
	generator story.Generator
	fallback  *story.FallbackGenerator
	safety    story.SafetyValidator
}

func NewStoryService(profiles *ProfileService, generator story.Generator, safety story.SafetyValidator) *StoryService {
	if safety == nil {
		safety = story.ApproveAll{}
	}
	return &StoryService{
		profiles:  profiles,
		generator: generator,
		fallback:  story.NewFallbackGenerator(),
		safety:    safety,
	}
}

// GenerateAdaptiveStory builds a full adventure tuned to the child's profile.
// An empty learningFocus means the engine picks the child's top gap.
func (s *StoryService) GenerateAdaptiveStory(ctx context.Context, childName string, age int, theme, learningFocus string) (*StoryResult, error) {
	profile := s.profiles.GetOrCreateProfile(childName, age)
	params := s.profiles.StoryParameters(childName, age, theme)

	if learningFocus == "" {
		learningFocus = string(s.profiles.PrimaryGap(childName, age))
	}

	text, explanation, err := s.generate(ctx, theme, childName, learningFocus, params)
	if err != nil {
		return nil, err
	}

	return &StoryResult{
		Story:             text,
		ParentExplanation: explanation,
		Theme:             theme,
		LearningFocus:     learningFocus,
		DifficultyLevel:   profile.DifficultyLevel,
		LearningStyle:     profile.LearningStyle,
		VocabularyWords:   params.VocabularyWords,
		Parameters:        params,
	}, nil
}

func (s *StoryService) generate(ctx context.Context, theme, childName, learningFocus string, params models.StoryParameters) (string, string, error) {
	if s.generator != nil {
		text, explanation, err := s.generator.GenerateAdventure(ctx, theme, childName, learningFocus, params)
		if err == nil {
			ok, verr := s.safety.Validate(ctx, text)
			if verr == nil && ok {
				return text, explanation, nil
			}
			if verr != nil {
				log.Printf("safety check failed for %s story: %v", theme, verr)
			}
		} else {
			log.Printf("adventure generation failed for %s: %v", theme, err)
		}
	}
	return s.fallback.GenerateAdventure(ctx, theme, childName, learningFocus, params)
}

// ComprehensionFor scores how much of the story's target vocabulary a child's
// retelling used.
func (s *StoryService) ComprehensionFor(response string, vocabularyWords []string) float64 {
	return adaptive.NewVocabularyPicker().AssessComprehension(response, vocabularyWords)
}
