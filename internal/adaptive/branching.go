package adaptive

// branchStrategy pairs a story branch with its content modifier flags.
type branchStrategy struct {
	branch        Branch
	modifications map[string]bool
}

var branchStrategies = map[Emotion]branchStrategy{
	EmotionExcited: {
		branch: BranchChallenging,
		modifications: map[string]bool{
			"increase_complexity":  true,
			"add_bonus_challenges": true,
			"celebratory_tone":     true,
			"high_energy":          true,
		},
	},
	EmotionCurious: {
		branch: BranchEnergizing,
		modifications: map[string]bool{
			"add_mysteries":         true,
			"include_exploration":   true,
			"ask_questions":         true,
			"detailed_descriptions": true,
		},
	},
	EmotionConfident: {
		branch: BranchChallenging,
		modifications: map[string]bool{
			"leadership_roles":      true,
			"complex_decisions":     true,
			"multiple_solutions":    true,
			"responsibility_themes": true,
		},
	},
	EmotionFrustrated: {
		branch: BranchComforting,
		modifications: map[string]bool{
			"reduce_complexity": true,
			"provide_hints":     true,
			"encouraging_tone":  true,
			"break_into_steps":  true,
		},
	},
	EmotionBored: {
		branch: BranchEnergizing,
		modifications: map[string]bool{
			"surprise_elements":   true,
			"interactive_choices": true,
			"humor_injection":     true,
			"pace_acceleration":   true,
		},
	},
	EmotionNeutral: {
		branch: BranchEncouraging,
		modifications: map[string]bool{
			"balanced_approach":      true,
			"gentle_challenges":      true,
			"positive_reinforcement": true,
		},
	},
}

var promptGuidance = map[Emotion]string{
	EmotionExcited: `The child is very excited! Make the story extra engaging with:
- Celebratory language and exclamation points
- More challenging but achievable tasks
- Bonus surprises and discoveries
- High energy and adventure`,
	EmotionCurious: `The child is curious and wants to explore! Include:
- Mysterious elements to investigate
- Detailed world-building descriptions
- Questions that encourage deeper thinking
- Opportunities for discovery and learning`,
	EmotionConfident: `The child feels confident! Provide:
- Leadership opportunities in the story
- More complex challenges they can handle
- Choices that matter and have consequences
- Recognition of their growing abilities`,
	EmotionFrustrated: `The child seems frustrated. Be extra supportive:
- Break challenges into smaller, manageable steps
- Provide gentle hints and encouragement
- Use a warm, reassuring tone
- Celebrate small victories along the way`,
	EmotionBored: `The child seems less engaged. Add excitement:
- Unexpected plot twists and surprises
- Interactive elements and choices
- Humor and playful elements
- Faster pacing and dynamic action`,
	EmotionNeutral: `Maintain balanced engagement:
- Mix of challenge and support
- Positive, encouraging tone
- Appropriate complexity for their level
- Clear structure with achievable goals`,
}

// BranchingEngine maps a detected emotion to a story-shaping directive.
type BranchingEngine struct{}

func NewBranchingEngine() *BranchingEngine {
	return &BranchingEngine{}
}

// StoryModifications returns the input story parameters augmented with the
// emotion branch, the emotion itself and the branch's boolean modifier set.
// Unknown emotions fall back to the neutral strategy.
func (e *BranchingEngine) StoryModifications(emotion Emotion, params map[string]interface{}) map[string]interface{} {
	strategy, ok := branchStrategies[emotion]
	if !ok {
		strategy = branchStrategies[EmotionNeutral]
	}

	modifications := make(map[string]bool, len(strategy.modifications))
	for k, v := range strategy.modifications {
		modifications[k] = v
	}

	enhanced := make(map[string]interface{}, len(params)+3)
	for k, v := range params {
		enhanced[k] = v
	}
	enhanced["emotion_branch"] = string(strategy.branch)
	enhanced["emotion_state"] = string(emotion)
	enhanced["story_modifications"] = modifications
	return enhanced
}

// PromptGuidance returns guidance text for the story-generation collaborator.
func (e *BranchingEngine) PromptGuidance(emotion Emotion) string {
	if guidance, ok := promptGuidance[emotion]; ok {
		return guidance
	}
	return promptGuidance[EmotionNeutral]
}
