package selection

// Template is one pre-authored story part with an embedded question, used
// when no external generator is available or it fails. Text fields may
// contain a %s placeholder for the child's name.
type Template struct {
	ID          string
	Theme       string // empty matches any theme
	Tags        []string
	Focus       string
	Difficulty  string
	StoryPart   string
	Question    string
	Answer      string
	Explanation string
}

// Criteria narrows and weights the template pool for one selection.
type Criteria struct {
	Focus          string
	Difficulty     string
	Theme          string
	ThemeTags      []string
	ExcludeIDs     []string
	WeightExponent float64
}

// WeightedTemplate carries a template with its computed selection weight.
type WeightedTemplate struct {
	Template   Template
	Weight     float64
	TagMatches int
}

// Result is the outcome of one selection pass.
type Result struct {
	Templates       []Template
	TotalCandidates int
	AverageMatch    float64
}
