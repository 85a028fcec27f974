package models

import "time"

// StoryQuestion is one question embedded in a story part.
type StoryQuestion struct {
	Question      string `bson:"question" json:"question"`
	CorrectAnswer string `bson:"correct_answer" json:"correct_answer"`
	Explanation   string `bson:"explanation" json:"explanation"`
	Difficulty    string `bson:"difficulty" json:"difficulty"`
	PartNumber    int    `bson:"part_number" json:"part_number"`
}

// QuestionResult records one answered question. Difficulty is the session
// difficulty at the time the question was posed, not the post-answer level.
type QuestionResult struct {
	QuestionNumber int       `bson:"question_number" json:"question_number"`
	QuestionText   string    `bson:"question_text" json:"question_text"`
	UserAnswer     string    `bson:"user_answer" json:"user_answer"`
	CorrectAnswer  string    `bson:"correct_answer" json:"correct_answer"`
	IsCorrect      bool      `bson:"is_correct" json:"is_correct"`
	Difficulty     string    `bson:"difficulty" json:"difficulty"`
	ResponseTime   float64   `bson:"response_time" json:"response_time"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
	Explanation    string    `bson:"explanation" json:"explanation"`
}

// StorySession is one three-question story instance with its own short-lived
// difficulty trajectory, independent of the profile's long-run difficulty.
type StorySession struct {
	ID              string           `bson:"_id,omitempty" json:"id"`
	ChildName       string           `bson:"child_name" json:"child_name"`
	Theme           string           `bson:"theme" json:"theme"`
	LearningFocus   string           `bson:"learning_focus" json:"learning_focus"`
	Difficulty      string           `bson:"difficulty" json:"difficulty"`
	StoryParts      []string         `bson:"story_parts" json:"story_parts"`
	Questions       []StoryQuestion  `bson:"questions" json:"questions"`
	QuestionResults []QuestionResult `bson:"question_results" json:"question_results"`
	StartTime       time.Time        `bson:"start_time" json:"start_time"`
	Status          string           `bson:"status" json:"status"`
}
