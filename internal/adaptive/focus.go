package adaptive

import "strings"

// Focus is the closed learning-focus tag set all internal logic operates on.
// Free-form focus strings (including emoji-prefixed display labels) are
// normalized once at the boundary; nothing past NormalizeFocus ever inspects
// raw focus text.
type Focus string

const (
	FocusMath           Focus = "math"
	FocusVocabulary     Focus = "vocabulary"
	FocusProblemSolving Focus = "problem_solving"
	FocusUnknown        Focus = "unknown"
)

// NormalizeFocus maps a free-form learning-focus string to a Focus tag.
// Unrecognized strings map to FocusUnknown rather than failing, so a bad
// label degrades to neutral scoring instead of corrupting a profile.
func NormalizeFocus(raw string) Focus {
	s := strings.ToLower(strings.TrimSpace(stripDisplayPrefix(raw)))

	switch {
	case strings.Contains(s, "math"), strings.Contains(s, "counting"),
		strings.Contains(s, "addition"), strings.Contains(s, "subtraction"):
		return FocusMath
	case strings.Contains(s, "vocabulary"), strings.Contains(s, "word"):
		return FocusVocabulary
	case strings.Contains(s, "problem"), strings.Contains(s, "logic"):
		return FocusProblemSolving
	}
	return FocusUnknown
}

// stripDisplayPrefix drops any leading non-letter runes (emoji, bullets)
// that presentation layers prepend to focus labels.
func stripDisplayPrefix(s string) string {
	for i, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return s[i:]
		}
	}
	return s
}
