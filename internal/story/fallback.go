package story

import (
	"context"
	"fmt"
	"strings"

	"story-service/internal/adaptive"
	"story-service/internal/models"
	"story-service/internal/selection"
)

var themeTags = map[string][]string{
	"dragons":    {"dragons", "fantasy", "animals"},
	"pirates":    {"pirates", "sea", "adventure"},
	"princesses": {"princesses", "castle", "royal"},
}

// FallbackGenerator produces deterministic story parts from the built-in
// template pool. It backs the service when no external generator is
// configured and steps in when the configured one fails.
type FallbackGenerator struct {
	selector *selection.WeightedSelector
	pool     []selection.Template
}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{
		selector: selection.NewWeightedSelector(),
		pool:     selection.BuiltinTemplates,
	}
}

func (g *FallbackGenerator) GeneratePart(ctx context.Context, req PartRequest) (*Part, error) {
	session := req.Session

	var used []string
	for _, q := range session.Questions {
		used = append(used, templateIDOf(q))
	}

	criteria := &selection.Criteria{
		Focus:      string(adaptive.NormalizeFocus(session.LearningFocus)),
		Difficulty: session.Difficulty,
		Theme:      session.Theme,
		ThemeTags:  themeTags[session.Theme],
		ExcludeIDs: used,
	}
	result := g.selector.Select(g.pool, criteria, 1)
	if len(result.Templates) == 0 {
		// Exhausted or unknown focus: generic open-ended prompt graded
		// as correct for any non-empty answer.
		return g.genericPart(session, req.PartNumber), nil
	}
	t := result.Templates[0]

	name := session.ChildName
	part := &Part{
		Text: expand(t.StoryPart, name),
		Question: models.StoryQuestion{
			Question:      expand(t.Question, name),
			CorrectAnswer: t.Answer,
			Explanation:   t.Explanation,
			Difficulty:    t.Difficulty,
			PartNumber:    req.PartNumber,
		},
		Explanation: fmt.Sprintf("Part %d of 3: a %s challenge at %s difficulty, woven into the %s adventure.",
			req.PartNumber, session.LearningFocus, session.Difficulty, session.Theme),
	}
	return part, nil
}

func (g *FallbackGenerator) GenerateAdventure(ctx context.Context, theme, childName, learningFocus string, params models.StoryParameters) (string, string, error) {
	opening := map[string]string{
		"dragons":    "%s steps into a valley where friendly dragons soar overhead.",
		"pirates":    "Captain %s unfurls the sails and points the ship toward Treasure Island.",
		"princesses": "Princess %s opens the castle gates for a brand-new quest.",
	}
	tmpl, ok := opening[theme]
	if !ok {
		tmpl = "%s sets off on a brand-new adventure."
	}
	storyText := fmt.Sprintf(tmpl, childName)
	if len(params.VocabularyWords) > 0 {
		storyText += fmt.Sprintf(" Along the way, %s learns the word '%s'.", childName, params.VocabularyWords[0])
	}
	explanation := fmt.Sprintf("A %s story focused on %s at difficulty level %d.", theme, learningFocus, params.DifficultyLevel)
	return storyText, explanation, nil
}

func (g *FallbackGenerator) genericPart(session *models.StorySession, partNumber int) *Part {
	text := fmt.Sprintf("Part %d: %s continues the %s adventure and faces a brand-new challenge.",
		partNumber, session.ChildName, session.Theme)
	return &Part{
		Text: text,
		Question: models.StoryQuestion{
			Question:      fmt.Sprintf("What do you think %s should do next?", session.ChildName),
			CorrectAnswer: adaptive.OpenEndedAnswer,
			Explanation:   "Great thinking!",
			Difficulty:    session.Difficulty,
			PartNumber:    partNumber,
		},
		Explanation: "Story generated with the backup system.",
	}
}

// templateIDOf reconstructs the template ID a stored question came from, so
// repeated parts in one session avoid repeating templates.
func templateIDOf(q models.StoryQuestion) string {
	for _, t := range selection.BuiltinTemplates {
		if t.Answer == q.CorrectAnswer && t.Explanation == q.Explanation {
			return t.ID
		}
	}
	return ""
}

// expand substitutes every %s placeholder with the child's name.
func expand(tmpl, name string) string {
	return strings.ReplaceAll(tmpl, "%s", name)
}
