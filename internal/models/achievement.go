package models

import "time"

// Achievement is a one-time unlock record created when a catalog predicate
// first becomes true for a profile.
type Achievement struct {
	ID          string      `bson:"id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Category    string      `bson:"category" json:"category"`
	EarnedAt    time.Time   `bson:"earned_at" json:"earned_at"`
	Context     Interaction `bson:"context" json:"context"`
	Celebration string      `bson:"celebration" json:"celebration"`
}

// AchievementProgress reports how far a profile is from an unearned
// achievement. Percentage is capped at 100.
type AchievementProgress struct {
	Current    int     `bson:"current" json:"current"`
	Target     int     `bson:"target" json:"target"`
	Percentage float64 `bson:"percentage" json:"percentage"`
	Title      string  `bson:"title" json:"title"`
}
