package adaptive

import (
	"strconv"
	"strings"
)

// OpenEndedAnswer marks a question with no single right answer, such as the
// "what should the hero do next" prompts. The evaluator accepts any
// non-empty response for it.
const OpenEndedAnswer = "any creative answer"

// AnswerEvaluator is the focus-specific correctness check for session
// questions.
type AnswerEvaluator struct{}

func NewAnswerEvaluator() *AnswerEvaluator {
	return &AnswerEvaluator{}
}

// Evaluate grades a user answer against the correct answer. Math answers
// compare as parsed numbers ("5" matches "5.0"), falling back to exact
// string equality when either side is not numeric. Other focuses accept a
// case-insensitive mutual substring match. Open-ended questions accept any
// non-empty response.
func (e *AnswerEvaluator) Evaluate(userAnswer, correctAnswer string, focus Focus) bool {
	if correctAnswer == OpenEndedAnswer {
		return strings.TrimSpace(userAnswer) != ""
	}

	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))

	if focus == FocusMath {
		userNum, uerr := strconv.ParseFloat(user, 64)
		correctNum, cerr := strconv.ParseFloat(correct, 64)
		if uerr == nil && cerr == nil {
			return userNum == correctNum
		}
		return user == correct
	}

	if user == "" || correct == "" {
		return user == correct
	}
	return strings.Contains(correct, user) || strings.Contains(user, correct)
}
