package models

// Recommendation is one ranked (theme, learning focus) story suggestion.
type Recommendation struct {
	Theme             string  `bson:"theme" json:"theme"`
	LearningFocus     string  `bson:"learning_focus" json:"learning_focus"`
	DifficultyLevel   int     `bson:"difficulty_level" json:"difficulty_level"`
	Reason            string  `bson:"reason" json:"reason"`
	EstimatedDuration int     `bson:"estimated_duration_minutes" json:"estimated_duration_minutes"`
	ConfidenceScore   float64 `bson:"confidence_score" json:"confidence_score"`
}

// StoryParameters is the bundle handed to the story-generation collaborator.
type StoryParameters struct {
	DifficultyLevel int                `bson:"difficulty_level" json:"difficulty_level"`
	LearningStyle   string             `bson:"learning_style" json:"learning_style"`
	VocabularyWords []string           `bson:"vocabulary_words" json:"vocabulary_words"`
	PreferredThemes map[string]float64 `bson:"preferred_themes" json:"preferred_themes"`
	LearningMetrics LearningMetrics    `bson:"learning_metrics" json:"learning_metrics"`
}
