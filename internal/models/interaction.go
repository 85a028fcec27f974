package models

import "time"

// Interaction is one raw interaction event flowing into the adaptive engine.
// Optional signals are pointers: a nil field means the signal was not
// observed, and the metric updates that depend on it are skipped.
type Interaction struct {
	Theme           string    `bson:"theme" json:"theme" binding:"required"`
	LearningFocus   string    `bson:"learning_focus" json:"learning_focus" binding:"required"`
	Response        string    `bson:"response" json:"response"`
	Correct         *bool     `bson:"correct,omitempty" json:"correct,omitempty"`
	ResponseTime    *float64  `bson:"response_time,omitempty" json:"response_time,omitempty"`
	EngagementScore *float64  `bson:"engagement_score,omitempty" json:"engagement_score,omitempty"`
	Comprehension   *float64  `bson:"comprehension_score,omitempty" json:"comprehension_score,omitempty"`
	SessionDuration float64   `bson:"session_duration" json:"session_duration"`
	StoryCompleted  bool      `bson:"story_completed" json:"story_completed"`
	NewWordsLearned int       `bson:"new_words_learned" json:"new_words_learned"`
	Confidence      int       `bson:"confidence,omitempty" json:"confidence,omitempty"`
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
}

// IsCorrect reports whether the interaction was answered correctly. An
// interaction with no correctness signal counts as incorrect.
func (i *Interaction) IsCorrect() bool {
	return i.Correct != nil && *i.Correct
}

// ResponseTimeOr returns the response time, or def when none was recorded.
func (i *Interaction) ResponseTimeOr(def float64) float64 {
	if i.ResponseTime == nil {
		return def
	}
	return *i.ResponseTime
}

// EngagementOr returns the engagement score, or def when none was recorded.
func (i *Interaction) EngagementOr(def float64) float64 {
	if i.EngagementScore == nil {
		return def
	}
	return *i.EngagementScore
}
