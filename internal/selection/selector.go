package selection

import (
	"math"
	"math/rand"
	"strings"
	"time"
)

// WeightedSelector performs weighted random selection over the template
// pool. Templates matching more theme tags are exponentially preferred so
// repeated sessions still see variety without losing theme fit.
type WeightedSelector struct {
	rand *rand.Rand
}

func NewWeightedSelector() *WeightedSelector {
	return &WeightedSelector{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select returns up to count templates matching the criteria, weighted by
// theme-tag overlap.
func (s *WeightedSelector) Select(pool []Template, criteria *Criteria, count int) *Result {
	weighted := s.weigh(pool, criteria)
	if len(weighted) == 0 {
		return &Result{Templates: []Template{}}
	}

	picked := s.weightedRandomPick(weighted, count)

	templates := make([]Template, len(picked))
	matches := 0
	for i, wt := range picked {
		templates[i] = wt.Template
		matches += wt.TagMatches
	}
	avg := 0.0
	if len(picked) > 0 {
		avg = float64(matches) / float64(len(picked))
	}
	return &Result{
		Templates:       templates,
		TotalCandidates: len(weighted),
		AverageMatch:    avg,
	}
}

func (s *WeightedSelector) weigh(pool []Template, criteria *Criteria) []WeightedTemplate {
	exponent := criteria.WeightExponent
	if exponent == 0 {
		exponent = 2.0
	}
	excluded := make(map[string]bool, len(criteria.ExcludeIDs))
	for _, id := range criteria.ExcludeIDs {
		excluded[id] = true
	}

	var weighted []WeightedTemplate
	for _, t := range pool {
		if excluded[t.ID] {
			continue
		}
		if criteria.Focus != "" && t.Focus != criteria.Focus {
			continue
		}
		if criteria.Difficulty != "" && t.Difficulty != criteria.Difficulty {
			continue
		}
		if t.Theme != "" && criteria.Theme != "" && t.Theme != criteria.Theme {
			continue
		}

		matches := countTagMatches(t.Tags, criteria.ThemeTags)
		weight := 0.1
		if matches > 0 {
			weight = math.Pow(float64(matches), exponent)
		}
		// Theme-exact templates beat generic ones at equal tag overlap.
		if t.Theme != "" && t.Theme == criteria.Theme {
			weight *= 2
		}

		weighted = append(weighted, WeightedTemplate{
			Template:   t,
			Weight:     weight,
			TagMatches: matches,
		})
	}
	return weighted
}

func (s *WeightedSelector) weightedRandomPick(weighted []WeightedTemplate, count int) []WeightedTemplate {
	if len(weighted) <= count {
		return weighted
	}

	selected := make([]WeightedTemplate, 0, count)
	remaining := make([]WeightedTemplate, len(weighted))
	copy(remaining, weighted)

	for len(selected) < count && len(remaining) > 0 {
		total := 0.0
		for _, wt := range remaining {
			total += wt.Weight
		}

		idx := 0
		if total > 0 {
			r := s.rand.Float64() * total
			cumulative := 0.0
			for i, wt := range remaining {
				cumulative += wt.Weight
				if r <= cumulative {
					idx = i
					break
				}
			}
		} else {
			idx = s.rand.Intn(len(remaining))
		}

		selected = append(selected, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return selected
}

func countTagMatches(templateTags, themeTags []string) int {
	tagSet := make(map[string]bool, len(themeTags))
	for _, tag := range themeTags {
		tagSet[strings.ToLower(tag)] = true
	}
	matches := 0
	for _, tag := range templateTags {
		if tagSet[strings.ToLower(tag)] {
			matches++
		}
	}
	return matches
}
