package adaptive

import (
	"log"
	"strings"
	"time"

	"story-service/internal/models"
)

// CatalogEntry is one immutable achievement definition. Unlock predicates
// are pure functions of profile state so each entry is independently
// testable.
type CatalogEntry struct {
	ID          string
	Title       string
	Description string
	Category    string
	Celebration string
	Target      int
	Current     func(p *models.LearnerProfile) int
	Unlocked    func(p *models.LearnerProfile) bool
}

// Catalog is the process-wide achievement table.
var Catalog = []CatalogEntry{
	{
		ID:          "first_story_complete",
		Title:       "First Adventure Complete!",
		Description: "Completed your very first adventure story",
		Category:    "learning",
		Celebration: "Amazing! You completed your first adventure!",
		Target:      1,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.StoriesCompleted },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.StoriesCompleted >= 1 },
	},
	{
		ID:          "math_master_beginner",
		Title:       "Math Explorer",
		Description: "Solved 5 math problems correctly",
		Category:    "learning",
		Celebration: "You're becoming a math explorer!",
		Target:      5,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.MathProblemsSolved },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.MathProblemsSolved >= 5 },
	},
	{
		ID:          "vocabulary_builder",
		Title:       "Word Collector",
		Description: "Learned 10 new vocabulary words",
		Category:    "learning",
		Celebration: "You're collecting words like treasures!",
		Target:      10,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.VocabularyWordsLearned },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.VocabularyWordsLearned >= 10 },
	},
	{
		ID:          "problem_solver",
		Title:       "Puzzle Master",
		Description: "Solved challenging problems in stories",
		Category:    "learning",
		Celebration: "You're excellent at solving puzzles!",
		Target:      3,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.StoriesCompleted },
		Unlocked: func(p *models.LearnerProfile) bool {
			return p.AchievementStats.StoriesCompleted >= 3 && p.LearningMetrics.SuccessRate > 0.8
		},
	},
	{
		ID:          "story_enthusiast",
		Title:       "Story Enthusiast",
		Description: "Completed 10 adventure stories",
		Category:    "engagement",
		Celebration: "You absolutely love adventure stories!",
		Target:      10,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.StoriesCompleted },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.StoriesCompleted >= 10 },
	},
	{
		ID:          "theme_explorer",
		Title:       "Theme Explorer",
		Description: "Tried all different story themes",
		Category:    "engagement",
		Celebration: "You've explored every magical realm!",
		Target:      3,
		Current:     func(p *models.LearnerProfile) int { return len(p.AchievementStats.ThemesExplored) },
		Unlocked:    func(p *models.LearnerProfile) bool { return len(p.AchievementStats.ThemesExplored) >= 3 },
	},
	{
		ID:          "quick_thinker",
		Title:       "Quick Thinker",
		Description: "Answered challenges in under 10 seconds",
		Category:    "engagement",
		Celebration: "Lightning fast thinking!",
		Target:      5,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.QuickResponses },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.QuickResponses >= 5 },
	},
	{
		ID:          "creative_responses",
		Title:       "Creative Storyteller",
		Description: "Gave unique and creative responses",
		Category:    "creativity",
		Celebration: "Your imagination is incredible!",
		Target:      3,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.CreativeResponses },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.CreativeResponses >= 3 },
	},
	{
		ID:          "question_asker",
		Title:       "Curious Explorer",
		Description: "Asked thoughtful questions during stories",
		Category:    "creativity",
		Celebration: "Your curiosity makes stories even better!",
		Target:      5,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.QuestionsAsked },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.QuestionsAsked >= 5 },
	},
	{
		ID:          "never_give_up",
		Title:       "Never Give Up",
		Description: "Kept trying until you succeeded",
		Category:    "persistence",
		Celebration: "Your determination is inspiring!",
		Target:      3,
		Current:     func(p *models.LearnerProfile) int { return p.AchievementStats.ChallengesOvercome },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.AchievementStats.ChallengesOvercome >= 3 },
	},
	{
		ID:          "challenge_seeker",
		Title:       "Challenge Seeker",
		Description: "Chose harder difficulty levels",
		Category:    "persistence",
		Celebration: "You love challenging yourself!",
		Target:      LevelAdvanced,
		Current:     func(p *models.LearnerProfile) int { return p.DifficultyLevel },
		Unlocked:    func(p *models.LearnerProfile) bool { return p.DifficultyLevel >= LevelAdvanced },
	},
	{
		ID:          "improvement_champion",
		Title:       "Improvement Champion",
		Description: "Showed consistent improvement over time",
		Category:    "persistence",
		Celebration: "You're getting better every day!",
		Target:      10,
		Current:     func(p *models.LearnerProfile) int { return len(p.InteractionHistory) },
		Unlocked: func(p *models.LearnerProfile) bool {
			return len(p.InteractionHistory) >= 10 && improvementTrend(p)
		},
	},
}

var creativeIndicators = []string{
	"imagine", "pretend", "what if", "maybe", "could be",
	"different way", "another idea", "creative", "unique",
}

// AchievementSystem tracks cumulative counters and awards catalog entries
// when their predicates first become true.
type AchievementSystem struct{}

func NewAchievementSystem() *AchievementSystem {
	return &AchievementSystem{}
}

// CheckNew updates the profile's achievement stats from the interaction and
// returns unlock records for every catalog entry whose predicate just became
// true. Each entry fires at most once per profile, ever.
func (s *AchievementSystem) CheckNew(profile *models.LearnerProfile, interaction *models.Interaction) []models.Achievement {
	s.updateStats(profile, interaction)

	earned := make(map[string]bool, len(profile.Achievements))
	for _, id := range profile.Achievements {
		if earned[id] {
			// The append below makes this unreachable; seeing it means the
			// profile was mutated outside this system.
			log.Printf("achievement invariant violated: duplicate unlock %q for profile %s", id, profile.ID)
		}
		earned[id] = true
	}

	var unlocked []models.Achievement
	for _, entry := range Catalog {
		if earned[entry.ID] || !entry.Unlocked(profile) {
			continue
		}
		unlocked = append(unlocked, models.Achievement{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Category:    entry.Category,
			EarnedAt:    time.Now(),
			Context:     *interaction,
			Celebration: entry.Celebration,
		})
		profile.Achievements = append(profile.Achievements, entry.ID)
	}
	return unlocked
}

// ProgressTowards reports {current, target, percentage} for every
// counter-backed achievement the profile has not yet earned.
func (s *AchievementSystem) ProgressTowards(profile *models.LearnerProfile) map[string]models.AchievementProgress {
	earned := make(map[string]bool, len(profile.Achievements))
	for _, id := range profile.Achievements {
		earned[id] = true
	}

	progress := map[string]models.AchievementProgress{}
	for _, entry := range Catalog {
		if earned[entry.ID] || entry.Target <= 0 {
			continue
		}
		current := entry.Current(profile)
		pct := float64(current) / float64(entry.Target) * 100
		if pct > 100 {
			pct = 100
		}
		progress[entry.ID] = models.AchievementProgress{
			Current:    current,
			Target:     entry.Target,
			Percentage: pct,
			Title:      entry.Title,
		}
	}
	return progress
}

func (s *AchievementSystem) updateStats(profile *models.LearnerProfile, interaction *models.Interaction) {
	stats := &profile.AchievementStats

	if interaction.StoryCompleted {
		stats.StoriesCompleted++
	}

	if interaction.IsCorrect() {
		if previousWasMiss(profile) {
			stats.ChallengesOvercome++
		}
		stats.CurrentStreak++
		if NormalizeFocus(interaction.LearningFocus) == FocusMath {
			stats.MathProblemsSolved++
		}
	} else if interaction.Correct != nil {
		stats.CurrentStreak = 0
	}

	if interaction.NewWordsLearned > 0 {
		stats.VocabularyWordsLearned += interaction.NewWordsLearned
	}

	if interaction.Theme != "" {
		stats.ThemesExplored[interaction.Theme] = true
	}

	if interaction.ResponseTimeOr(15.0) < 10 {
		stats.QuickResponses++
	}

	if isCreativeResponse(interaction.Response) {
		stats.CreativeResponses++
	}

	if strings.Contains(interaction.Response, "?") {
		stats.QuestionsAsked++
	}

	stats.SessionDates[time.Now().Format("2006-01-02")] = true
}

// previousWasMiss reports whether the most recent graded interaction before
// the current one (already appended as the last history element) was wrong.
func previousWasMiss(profile *models.LearnerProfile) bool {
	history := profile.InteractionHistory
	for i := len(history) - 2; i >= 0; i-- {
		if history[i].Correct != nil {
			return !*history[i].Correct
		}
	}
	return false
}

func isCreativeResponse(response string) bool {
	lower := strings.ToLower(response)
	for _, ind := range creativeIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return len(response) > 30
}

// improvementTrend compares success in the last five interactions against
// the earliest five still retained.
func improvementTrend(profile *models.LearnerProfile) bool {
	history := profile.InteractionHistory
	if len(history) < 10 {
		return false
	}
	recent := 0
	for _, in := range history[len(history)-5:] {
		if in.IsCorrect() {
			recent++
		}
	}
	early := 0
	for _, in := range history[:5] {
		if in.IsCorrect() {
			early++
		}
	}
	return recent > early
}
