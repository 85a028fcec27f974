package adaptive

import "strings"

// baseVocabulary holds generic level-appropriate words, level 1 (ages 5-6)
// through 4 (ages 8-9).
var baseVocabulary = map[int][]string{
	1: {"big", "small", "happy", "sad", "run", "jump", "red", "blue"},
	2: {"adventure", "treasure", "magical", "courage", "friendship", "explore"},
	3: {"magnificent", "mysterious", "challenge", "determined", "discovery"},
	4: {"extraordinary", "magnificent", "perseverance", "imagination", "accomplishment"},
}

var themeVocabulary = map[string]map[int][]string{
	"dragons": {
		1: {"fire", "cave", "gold"},
		2: {"dragon", "treasure", "castle"},
		3: {"magnificent", "breathe fire", "guardian"},
		4: {"majestic", "legendary", "protective"},
	},
	"pirates": {
		1: {"ship", "sea", "gold"},
		2: {"pirate", "treasure", "island"},
		3: {"adventure", "navigation", "courage"},
		4: {"expedition", "cartographer", "mariner"},
	},
	"princesses": {
		1: {"crown", "dress", "nice"},
		2: {"princess", "castle", "kingdom"},
		3: {"royal", "wisdom", "leadership"},
		4: {"diplomacy", "benevolent", "governance"},
	},
}

// VocabularyPicker maps a (theme, vocabulary level) pair to a word list.
type VocabularyPicker struct{}

func NewVocabularyPicker() *VocabularyPicker {
	return &VocabularyPicker{}
}

// WordsFor returns theme-specific words at the profile's vocabulary level
// plus up to three generic words. The level is clamped into [1,4]; unknown
// themes contribute no theme words.
func (v *VocabularyPicker) WordsFor(vocabularyLevel float64, theme string) []string {
	level := clampLevel(vocabularyLevel)

	words := []string{}
	if byLevel, ok := themeVocabulary[theme]; ok {
		words = append(words, byLevel[level]...)
	}

	base := baseVocabulary[level]
	if len(base) > 3 {
		base = base[:3]
	}
	return append(words, base...)
}

// AssessComprehension returns the fraction of target words appearing in the
// response, 1.0 when there are no targets.
func (v *VocabularyPicker) AssessComprehension(response string, targetWords []string) float64 {
	if len(targetWords) == 0 {
		return 1.0
	}
	lower := strings.ToLower(response)
	understood := 0
	for _, word := range targetWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			understood++
		}
	}
	return float64(understood) / float64(len(targetWords))
}

func clampLevel(level float64) int {
	return minInt(LevelExpert, maxInt(LevelBeginner, int(level)))
}
