package adaptive

import (
	"strings"

	"story-service/internal/models"
)

var styleIndicators = map[LearningStyle][]string{
	StyleVisual:      {"picture", "see", "look", "color", "bright", "image"},
	StyleAuditory:    {"hear", "sound", "listen", "music", "voice", "loud"},
	StyleKinesthetic: {"move", "touch", "feel", "action", "do", "play"},
}

// styleOrder keeps the argmax deterministic when counts tie.
var styleOrder = []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic}

// StyleDetector classifies a profile's dominant learning modality from its
// response text history.
type StyleDetector struct{}

func NewStyleDetector() *StyleDetector {
	return &StyleDetector{}
}

// Detect analyzes the last 10 interactions. A single modality wins only when
// it holds at least half of all indicator hits; otherwise the style is mixed.
func (d *StyleDetector) Detect(history []models.Interaction) LearningStyle {
	if len(history) == 0 {
		return StyleMixed
	}

	counts := map[LearningStyle]int{}
	for _, in := range lastN(history, 10) {
		response := strings.ToLower(in.Response)
		for style, indicators := range styleIndicators {
			for _, ind := range indicators {
				if strings.Contains(response, ind) {
					counts[style]++
				}
			}
		}
	}

	dominant := StyleMixed
	maxCount := 0
	total := 0
	for _, style := range styleOrder {
		total += counts[style]
		if counts[style] > maxCount {
			maxCount = counts[style]
			dominant = style
		}
	}

	if maxCount == 0 || float64(maxCount)/float64(total) < 0.5 {
		return StyleMixed
	}
	return dominant
}
