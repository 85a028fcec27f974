package adaptive

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"story-service/internal/models"
)

// ProfileStore abstracts profile lifetime and persistence away from the
// engine. Implementations must serialize mutations per key.
type ProfileStore interface {
	Get(key string) (*models.LearnerProfile, bool)
	Put(key string, profile *models.LearnerProfile)
	GetOrCreate(key string, create func() *models.LearnerProfile) *models.LearnerProfile
}

// maxHistoryLen caps the retained interaction history per profile. The
// consumers read windows of the retained history (difficulty the last 5,
// learning style the last 10, the improvement trend its ends) and the
// cumulative counters live in AchievementStats, so older entries only grow
// the stored document.
const maxHistoryLen = 50

// Manager sequences every per-interaction profile update: metrics, long-run
// difficulty, learning style and the interest graph.
type Manager struct {
	store       ProfileStore
	difficulty  *DifficultyAdjuster
	vocabulary  *VocabularyPicker
	styles      *StyleDetector
	interests   *InterestGraph
	recommender *RecommendationEngine
}

func NewManager(store ProfileStore) *Manager {
	interests := NewInterestGraph()
	return &Manager{
		store:       store,
		difficulty:  NewDifficultyAdjuster(),
		vocabulary:  NewVocabularyPicker(),
		styles:      NewStyleDetector(),
		interests:   interests,
		recommender: NewRecommendationEngine(interests),
	}
}

// ProfileKey derives the store key from a child name. Case differences map
// to the same profile.
func ProfileKey(name string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(name)))
	return hex.EncodeToString(sum[:])
}

// GetOrCreateProfile looks up the profile for a child, creating one with
// defaults (mixed style, beginner difficulty) when absent.
func (m *Manager) GetOrCreateProfile(name string, age int) *models.LearnerProfile {
	key := ProfileKey(name)
	return m.store.GetOrCreate(key, func() *models.LearnerProfile {
		return models.NewLearnerProfile(key, name, age)
	})
}

// UpdateFromInteraction applies one interaction to the profile. Invalid
// interactions are rejected before any field is touched, so an update either
// fully applies or leaves the profile unchanged.
func (m *Manager) UpdateFromInteraction(profile *models.LearnerProfile, interaction *models.Interaction) error {
	if strings.TrimSpace(interaction.Theme) == "" || strings.TrimSpace(interaction.LearningFocus) == "" {
		return ErrInvalidInteraction
	}
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now()
	}

	profile.InteractionHistory = append(profile.InteractionHistory, *interaction)
	if len(profile.InteractionHistory) > maxHistoryLen {
		profile.InteractionHistory = profile.InteractionHistory[len(profile.InteractionHistory)-maxHistoryLen:]
	}
	m.updateLearningMetrics(profile, interaction)

	profile.DifficultyLevel = m.difficulty.AnalyzePerformance(profile.DifficultyLevel, profile.InteractionHistory)
	profile.LearningStyle = string(m.styles.Detect(profile.InteractionHistory))
	m.interests.Update(profile, interaction.Theme, interaction.EngagementOr(0.5))

	profile.LastUpdated = time.Now()
	m.store.Put(profile.ID, profile)
	return nil
}

// StoryParameters bundles the adaptive inputs handed to the external
// story-generation collaborator.
func (m *Manager) StoryParameters(profile *models.LearnerProfile, theme string) models.StoryParameters {
	return models.StoryParameters{
		DifficultyLevel: profile.DifficultyLevel,
		LearningStyle:   profile.LearningStyle,
		VocabularyWords: m.vocabulary.WordsFor(profile.LearningMetrics.VocabularyLevel, theme),
		PreferredThemes: profile.InterestGraph,
		LearningMetrics: profile.LearningMetrics,
	}
}

// Recommendations returns up to five ranked story suggestions.
func (m *Manager) Recommendations(profile *models.LearnerProfile) []models.Recommendation {
	return m.recommender.Generate(profile)
}

// PrimaryGap returns the profile's top learning gap, for choosing a story's
// learning focus when the caller has no preference.
func (m *Manager) PrimaryGap(profile *models.LearnerProfile) Focus {
	gaps := m.recommender.identifyGaps(profile)
	if len(gaps) == 0 {
		return FocusVocabulary
	}
	return gaps[0]
}

func (m *Manager) updateLearningMetrics(profile *models.LearnerProfile, interaction *models.Interaction) {
	metrics := &profile.LearningMetrics

	if interaction.Correct != nil {
		sample := 0.0
		if *interaction.Correct {
			sample = 1.0
		}
		metrics.SuccessRate = metrics.SuccessRate*0.9 + sample*0.1
	}
	if interaction.ResponseTime != nil {
		metrics.ResponseTimeAvg = metrics.ResponseTimeAvg*0.8 + *interaction.ResponseTime*0.2
	}
	if interaction.Comprehension != nil {
		metrics.ComprehensionScore = metrics.ComprehensionScore*0.8 + *interaction.Comprehension*0.2
	}
	if interaction.EngagementScore != nil {
		metrics.EngagementLevel = metrics.EngagementLevel*0.8 + *interaction.EngagementScore*0.2
	}

	// Skill levels only move up. Regression on repeated misses is an open
	// product decision; current behavior never decreases a level.
	if interaction.IsCorrect() {
		switch NormalizeFocus(interaction.LearningFocus) {
		case FocusMath:
			metrics.MathLevel = capLevel(metrics.MathLevel + 0.1)
		case FocusVocabulary:
			metrics.VocabularyLevel = capLevel(metrics.VocabularyLevel + 0.1)
		case FocusProblemSolving:
			metrics.ProblemSolvingLevel = capLevel(metrics.ProblemSolvingLevel + 0.1)
		}
	}
}

func capLevel(level float64) float64 {
	if level > float64(LevelExpert) {
		return float64(LevelExpert)
	}
	return level
}
