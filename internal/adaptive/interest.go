package adaptive

import (
	"sort"

	"story-service/internal/models"
)

// interestDecay shrinks every non-interacted theme on each update so that
// recent preferences dominate the graph.
const interestDecay = 0.95

var defaultThemes = []string{"dragons", "pirates", "princesses"}

// InterestGraph maintains an exponentially decayed weight per theme.
type InterestGraph struct{}

func NewInterestGraph() *InterestGraph {
	return &InterestGraph{}
}

// Update blends the interacted theme's weight with the engagement score and
// decays every other theme.
func (g *InterestGraph) Update(profile *models.LearnerProfile, theme string, engagementScore float64) {
	current := profile.InterestGraph[theme]
	profile.InterestGraph[theme] = current*0.8 + engagementScore*0.2

	for other := range profile.InterestGraph {
		if other != theme {
			profile.InterestGraph[other] *= interestDecay
		}
	}
}

// Recommend returns the top-n themes by weight descending. An empty graph
// yields the default theme set.
func (g *InterestGraph) Recommend(profile *models.LearnerProfile, n int) []string {
	if len(profile.InterestGraph) == 0 {
		if n < len(defaultThemes) {
			return defaultThemes[:n]
		}
		return defaultThemes
	}

	themes := make([]string, 0, len(profile.InterestGraph))
	for theme := range profile.InterestGraph {
		themes = append(themes, theme)
	}
	sort.Slice(themes, func(i, j int) bool {
		wi, wj := profile.InterestGraph[themes[i]], profile.InterestGraph[themes[j]]
		if wi != wj {
			return wi > wj
		}
		return themes[i] < themes[j]
	})

	if n < len(themes) {
		themes = themes[:n]
	}
	return themes
}
