package adaptive

import "errors"

var (
	// ErrInvalidInteraction rejects an interaction missing required fields.
	// The profile is left untouched.
	ErrInvalidInteraction = errors.New("interaction missing theme or learning focus")

	// ErrSessionComplete flags a caller sequencing bug: answering a session
	// that already holds all of its question results.
	ErrSessionComplete = errors.New("session already complete")

	// ErrNoPendingQuestion flags answering a session that has no unanswered
	// question outstanding.
	ErrNoPendingQuestion = errors.New("no pending question to answer")
)
