package story

import (
	"context"

	"story-service/internal/adaptive"
	"story-service/internal/models"
)

// PartRequest asks a generator for one story part with an embedded question.
type PartRequest struct {
	Session    *models.StorySession
	PartNumber int
	Params     adaptive.DifficultyParams
	Guidance   string
}

// Part is one generated story installment.
type Part struct {
	Text        string
	Question    models.StoryQuestion
	Explanation string
}

// Generator is the story-generation collaborator. The engine hands it
// adaptive parameters and takes back prose; it never retries or inspects
// the content.
type Generator interface {
	GeneratePart(ctx context.Context, req PartRequest) (*Part, error)
	GenerateAdventure(ctx context.Context, theme, childName, learningFocus string, params models.StoryParameters) (storyText, parentExplanation string, err error)
}

// SafetyValidator is the content-quality collaborator. The engine treats it
// as an opaque gate.
type SafetyValidator interface {
	Validate(ctx context.Context, text string) (bool, error)
}

// ApproveAll is the default gate when no validator is configured.
type ApproveAll struct{}

func (ApproveAll) Validate(ctx context.Context, text string) (bool, error) {
	return true, nil
}
