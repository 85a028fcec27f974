package adaptive

import "testing"

func TestNormalizeFocus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Focus
	}{
		{"math", FocusMath},
		{"Math", FocusMath},
		{"🔢 Counting", FocusMath},
		{"addition practice", FocusMath},
		{"subtraction", FocusMath},
		{"vocabulary", FocusVocabulary},
		{"📚 Word Power", FocusVocabulary},
		{"problem_solving", FocusProblemSolving},
		{"🧩 Logic Puzzles", FocusProblemSolving},
		{"  problem solving  ", FocusProblemSolving},
		{"dancing", FocusUnknown},
		{"", FocusUnknown},
		{"🎨", FocusUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := NormalizeFocus(tc.raw); got != tc.expected {
				t.Errorf("NormalizeFocus(%q) = %s, expected %s", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestStripDisplayPrefix(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"🔢 Counting", "Counting"},
		{"- math", "math"},
		{"math", "math"},
		{"123", "123"},
	}

	for _, tc := range testCases {
		if got := stripDisplayPrefix(tc.in); got != tc.expected {
			t.Errorf("stripDisplayPrefix(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
