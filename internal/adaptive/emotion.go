package adaptive

import (
	"strings"

	"story-service/internal/models"
)

type emotionIndicator struct {
	keywords  []string
	patterns  []string
	threshold float64
}

var emotionIndicators = map[Emotion]emotionIndicator{
	EmotionExcited: {
		keywords:  []string{"wow", "amazing", "awesome", "cool", "yes", "!", "love", "fantastic"},
		patterns:  []string{"multiple_exclamations", "long_responses", "immediate_response"},
		threshold: 0.7,
	},
	EmotionCurious: {
		keywords:  []string{"why", "how", "what", "where", "tell me more", "?", "interesting"},
		patterns:  []string{"questions", "exploration_requests"},
		threshold: 0.6,
	},
	EmotionConfident: {
		keywords:  []string{"easy", "know", "sure", "definitely", "of course", "obviously"},
		patterns:  []string{"quick_correct_answers", "detailed_responses"},
		threshold: 0.8,
	},
	EmotionFrustrated: {
		keywords:  []string{"hard", "difficult", "don't know", "confused", "help", "stuck"},
		patterns:  []string{"slow_response", "short_answers", "repeated_errors"},
		threshold: 0.7,
	},
	EmotionBored: {
		keywords:  []string{"boring", "tired", "whatever", "ok", "fine", "done"},
		patterns:  []string{"minimal_responses", "declining_engagement"},
		threshold: 0.6,
	},
}

// emotionOrder fixes the argmax iteration so identical inputs always yield
// the same emotion.
var emotionOrder = []Emotion{
	EmotionExcited, EmotionCurious, EmotionConfident, EmotionFrustrated, EmotionBored,
}

// EmotionDetector classifies a single interaction into one discrete
// emotional state from keyword and pattern signals. It is pure: no profile
// state is touched.
type EmotionDetector struct{}

func NewEmotionDetector() *EmotionDetector {
	return &EmotionDetector{}
}

// Detect scores every candidate emotion, applies momentum and correctness
// adjustments, and returns the argmax when it clears that emotion's
// confidence threshold. Anything below threshold reads as neutral.
func (d *EmotionDetector) Detect(interaction *models.Interaction, recentEmotions []string) Emotion {
	response := strings.ToLower(interaction.Response)

	scores := map[Emotion]float64{}
	for emotion, ind := range emotionIndicators {
		hits := 0
		for _, kw := range ind.keywords {
			if strings.Contains(response, kw) {
				hits++
			}
		}
		score := 0.0
		if hits > 0 {
			score += 0.4 * float64(hits) / float64(len(ind.keywords))
		}
		score += 0.6 * patternScore(interaction, ind.patterns)
		scores[emotion] = score
	}

	d.applyContext(scores, interaction, recentEmotions)

	dominant := EmotionNeutral
	best := 0.0
	for _, emotion := range emotionOrder {
		if scores[emotion] > best {
			best = scores[emotion]
			dominant = emotion
		}
	}
	if dominant == EmotionNeutral {
		return EmotionNeutral
	}
	if best >= emotionIndicators[dominant].threshold {
		return dominant
	}
	return EmotionNeutral
}

func patternScore(interaction *models.Interaction, patterns []string) float64 {
	response := interaction.Response
	responseTime := interaction.ResponseTimeOr(15.0)
	correct := interaction.IsCorrect()

	score := 0.0
	for _, pattern := range patterns {
		switch pattern {
		case "multiple_exclamations":
			if strings.Count(response, "!") > 1 {
				score += 0.3
			}
		case "long_responses":
			if len(response) > 50 {
				score += 0.2
			}
		case "immediate_response":
			if responseTime < 5.0 {
				score += 0.3
			}
		case "questions":
			if strings.Contains(response, "?") {
				score += 0.4
			}
		case "quick_correct_answers":
			if correct && responseTime < 10.0 {
				score += 0.4
			}
		case "slow_response":
			if responseTime > 30.0 {
				score += 0.3
			}
		case "short_answers":
			if len(response) < 10 {
				score += 0.2
			}
		case "minimal_responses":
			if len(response) < 5 {
				score += 0.4
			}
		}
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

func (d *EmotionDetector) applyContext(scores map[Emotion]float64, interaction *models.Interaction, recentEmotions []string) {
	// Momentum: the most recent historical emotion gets a boost.
	if len(recentEmotions) > 0 {
		recent := Emotion(recentEmotions[len(recentEmotions)-1])
		if _, ok := scores[recent]; ok {
			scores[recent] *= 1.2
		}
	}

	if interaction.Correct == nil {
		return
	}
	if *interaction.Correct {
		scores[EmotionConfident] *= 1.3
		scores[EmotionExcited] *= 1.1
		scores[EmotionFrustrated] *= 0.7
	} else {
		scores[EmotionFrustrated] *= 1.2
		scores[EmotionConfident] *= 0.6
	}
}
