package adaptive

import (
	"time"

	"story-service/internal/models"
)

// sessionQuestions is the fixed length of a story session.
const sessionQuestions = 3

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// DifficultyParams guides question generation at one (focus, stage) point.
type DifficultyParams struct {
	NumberRange [2]int   `json:"number_range,omitempty"`
	Operations  []string `json:"operations,omitempty"`
	MaxNumbers  int      `json:"max_numbers,omitempty"`
	WordLength  [2]int   `json:"word_length,omitempty"`
	Steps       int      `json:"steps,omitempty"`
	Complexity  string   `json:"complexity"`
	Context     string   `json:"context,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

var difficultyParams = map[Focus]map[Stage]DifficultyParams{
	FocusMath: {
		StageEasy: {
			NumberRange: [2]int{1, 5},
			Operations:  []string{"addition"},
			MaxNumbers:  2,
			Complexity:  "simple",
			Context:     "simple counting",
		},
		StageMedium: {
			NumberRange: [2]int{1, 10},
			Operations:  []string{"addition", "subtraction"},
			MaxNumbers:  3,
			Complexity:  "moderate",
			Context:     "basic arithmetic",
		},
		StageHard: {
			NumberRange: [2]int{5, 20},
			Operations:  []string{"addition", "subtraction", "multiplication"},
			MaxNumbers:  4,
			Complexity:  "advanced",
			Context:     "multi-step problems",
		},
	},
	FocusVocabulary: {
		StageEasy: {
			WordLength: [2]int{3, 5},
			Complexity: "simple",
			Examples:   []string{"big", "run", "happy", "blue", "cat"},
		},
		StageMedium: {
			WordLength: [2]int{5, 8},
			Complexity: "moderate",
			Examples:   []string{"adventure", "treasure", "magical", "courage"},
		},
		StageHard: {
			WordLength: [2]int{8, 12},
			Complexity: "advanced",
			Examples:   []string{"magnificent", "extraordinary", "perseverance"},
		},
	},
	FocusProblemSolving: {
		StageEasy: {
			Steps:      1,
			Complexity: "direct solution",
			Context:    "obvious problem",
		},
		StageMedium: {
			Steps:      2,
			Complexity: "requires thinking",
			Context:    "moderate challenge",
		},
		StageHard: {
			Steps:      3,
			Complexity: "creative solution",
			Context:    "complex scenario",
		},
	},
}

// SessionManager runs the per-session difficulty state machine for
// three-question story sessions. Every session starts easy regardless of the
// profile's long-run difficulty.
type SessionManager struct {
	evaluator *AnswerEvaluator
}

func NewSessionManager() *SessionManager {
	return &SessionManager{evaluator: NewAnswerEvaluator()}
}

// NewSession creates a fresh in-progress session at the easy stage.
func (m *SessionManager) NewSession(id, childName, theme, learningFocus string) *models.StorySession {
	return &models.StorySession{
		ID:              id,
		ChildName:       childName,
		Theme:           theme,
		LearningFocus:   learningFocus,
		Difficulty:      string(StageEasy),
		StoryParts:      []string{},
		Questions:       []models.StoryQuestion{},
		QuestionResults: []models.QuestionResult{},
		StartTime:       time.Now(),
		Status:          StatusInProgress,
	}
}

// ProcessAnswer grades the pending question, appends its result and advances
// the session difficulty for the next question. Answering a completed
// session is a caller sequencing bug and fails loudly.
func (m *SessionManager) ProcessAnswer(session *models.StorySession, userAnswer string, responseTime float64) (*models.QuestionResult, error) {
	if session.Status == StatusCompleted || len(session.QuestionResults) >= sessionQuestions {
		return nil, ErrSessionComplete
	}
	answered := len(session.QuestionResults)
	if answered >= len(session.Questions) {
		return nil, ErrNoPendingQuestion
	}
	question := session.Questions[answered]

	correct := m.evaluator.Evaluate(userAnswer, question.CorrectAnswer, NormalizeFocus(session.LearningFocus))

	result := models.QuestionResult{
		QuestionNumber: answered + 1,
		QuestionText:   question.Question,
		UserAnswer:     userAnswer,
		CorrectAnswer:  question.CorrectAnswer,
		IsCorrect:      correct,
		Difficulty:     session.Difficulty,
		ResponseTime:   responseTime,
		Timestamp:      time.Now(),
		Explanation:    question.Explanation,
	}
	session.QuestionResults = append(session.QuestionResults, result)

	// No transition after the final question; the closing difficulty is
	// frozen into the session record.
	if len(session.QuestionResults) < sessionQuestions {
		session.Difficulty = string(adjustStage(Stage(session.Difficulty), correct, len(session.QuestionResults)))
	} else {
		session.Status = StatusCompleted
	}

	return &result, nil
}

// adjustStage applies the up/down transition rule after an answered
// question. questionNumber counts answered questions, 1-based.
func adjustStage(current Stage, correct bool, questionNumber int) Stage {
	if correct {
		switch current {
		case StageEasy:
			return StageMedium
		case StageMedium:
			if questionNumber < sessionQuestions {
				return StageHard
			}
		}
		return current
	}
	switch current {
	case StageHard:
		return StageMedium
	case StageMedium:
		return StageEasy
	}
	return current
}

// ParamsFor returns generation guidance for a focus at a session stage.
// Unknown focuses get an empty neutral parameter set.
func (m *SessionManager) ParamsFor(focus Focus, stage Stage) DifficultyParams {
	if byStage, ok := difficultyParams[focus]; ok {
		if params, ok := byStage[stage]; ok {
			return params
		}
	}
	return DifficultyParams{}
}

// Progress returns session completion as a 0-100 percentage.
func Progress(session *models.StorySession) int {
	return len(session.QuestionResults) * 100 / sessionQuestions
}

// SessionSuccessRate is the fraction of answered questions that were
// correct, 0 when nothing has been answered yet.
func SessionSuccessRate(session *models.StorySession) float64 {
	if len(session.QuestionResults) == 0 {
		return 0
	}
	correct := 0
	for _, r := range session.QuestionResults {
		if r.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(session.QuestionResults))
}

// StoryText concatenates the story parts revealed so far.
func StoryText(session *models.StorySession) string {
	text := ""
	for i, part := range session.StoryParts {
		if i > 0 {
			text += " "
		}
		text += part
	}
	return text
}
