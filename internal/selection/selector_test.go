package selection

import "testing"

func testPool() []Template {
	return []Template{
		{ID: "a", Theme: "dragons", Tags: []string{"dragons", "fantasy"}, Focus: "math", Difficulty: "easy"},
		{ID: "b", Theme: "dragons", Tags: []string{"dragons"}, Focus: "math", Difficulty: "medium"},
		{ID: "c", Theme: "pirates", Tags: []string{"pirates", "sea"}, Focus: "math", Difficulty: "easy"},
		{ID: "d", Tags: []string{"adventure"}, Focus: "vocabulary", Difficulty: "easy"},
	}
}

func TestSelectFiltersByCriteria(t *testing.T) {
	selector := NewWeightedSelector()

	result := selector.Select(testPool(), &Criteria{
		Focus:      "math",
		Difficulty: "easy",
		Theme:      "dragons",
	}, 5)

	if len(result.Templates) != 1 {
		t.Fatalf("Expected 1 template, got %d", len(result.Templates))
	}
	if result.Templates[0].ID != "a" {
		t.Errorf("Expected template a, got %s", result.Templates[0].ID)
	}
}

func TestSelectGenericTemplateMatchesAnyTheme(t *testing.T) {
	selector := NewWeightedSelector()

	result := selector.Select(testPool(), &Criteria{
		Focus:      "vocabulary",
		Difficulty: "easy",
		Theme:      "dragons",
	}, 1)

	if len(result.Templates) != 1 || result.Templates[0].ID != "d" {
		t.Errorf("Expected theme-less template d, got %v", result.Templates)
	}
}

func TestSelectHonorsExcludes(t *testing.T) {
	selector := NewWeightedSelector()

	result := selector.Select(testPool(), &Criteria{
		Focus:      "math",
		Difficulty: "easy",
		Theme:      "dragons",
		ExcludeIDs: []string{"a"},
	}, 1)

	if len(result.Templates) != 0 {
		t.Errorf("Expected no templates after exclusion, got %v", result.Templates)
	}
}

func TestSelectEmptyPool(t *testing.T) {
	selector := NewWeightedSelector()

	result := selector.Select(nil, &Criteria{Focus: "math"}, 1)
	if len(result.Templates) != 0 {
		t.Errorf("Expected empty result, got %v", result.Templates)
	}
}

func TestWeighPrefersTagOverlap(t *testing.T) {
	selector := NewWeightedSelector()

	weighted := selector.weigh(testPool(), &Criteria{
		Focus:      "math",
		Difficulty: "easy",
		ThemeTags:  []string{"dragons", "fantasy"},
	})

	byID := map[string]float64{}
	for _, wt := range weighted {
		byID[wt.Template.ID] = wt.Weight
	}
	// a matches both tags (weight 4 before theme boost), c matches none (0.1).
	if byID["a"] <= byID["c"] {
		t.Errorf("Expected a to outweigh c, got a=%.2f c=%.2f", byID["a"], byID["c"])
	}
}

func TestBuiltinTemplatesCoverSessionGrid(t *testing.T) {
	type key struct{ focus, difficulty string }
	seen := map[key]bool{}
	ids := map[string]bool{}

	for _, tmpl := range BuiltinTemplates {
		if ids[tmpl.ID] {
			t.Errorf("Duplicate template ID %s", tmpl.ID)
		}
		ids[tmpl.ID] = true
		if tmpl.Answer == "" {
			t.Errorf("Template %s has no answer", tmpl.ID)
		}
		seen[key{tmpl.Focus, tmpl.Difficulty}] = true
	}

	for _, focus := range []string{"math", "vocabulary", "problem_solving"} {
		for _, difficulty := range []string{"easy", "medium", "hard"} {
			if !seen[key{focus, difficulty}] {
				t.Errorf("No template for %s/%s", focus, difficulty)
			}
		}
	}
}
