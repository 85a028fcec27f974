package service

import (
	"context"
	"log"

	"story-service/internal/adaptive"
	"story-service/internal/models"
	"story-service/internal/repository"
)

// InteractionOutcome is everything one processed interaction produced.
type InteractionOutcome struct {
	Profile *models.LearnerProfile  `json:"profile"`
	Emotion *adaptive.EmotionResult `json:"emotion"`
}

// ProfileBackend is the durable store for learner profiles.
type ProfileBackend interface {
	FindByKey(ctx context.Context, key string) (*models.LearnerProfile, error)
	Upsert(ctx context.Context, profile *models.LearnerProfile) error
	List(ctx context.Context, limit int64) ([]models.LearnerProfile, error)
}

// AchievementBackend records achievement unlocks durably.
type AchievementBackend interface {
	Record(ctx context.Context, profileKey string, achievements []models.Achievement) error
	FindByProfile(ctx context.Context, profileKey string) ([]models.Achievement, error)
}

// ProfileService owns the profile store and runs the full adaptive pipeline
// on each interaction: metrics and difficulty via the adaptive manager, then
// emotion detection, achievements and branching.
//
// Profiles returned by any method are deep-copy snapshots taken under the
// per-profile lock. The live profile never leaves the service, so callers
// can marshal or persist results while later interactions mutate the
// original.
type ProfileService struct {
	store           *repository.MemoryProfileStore
	repo            ProfileBackend
	achievementRepo AchievementBackend
	manager         *adaptive.Manager
	emotions        *adaptive.EmotionManager
}

// NewProfileService wires the service. The backends are optional; with nil
// backends profiles live only in memory.
func NewProfileService(store *repository.MemoryProfileStore, repo ProfileBackend, achievementRepo AchievementBackend) *ProfileService {
	return &ProfileService{
		store:           store,
		repo:            repo,
		achievementRepo: achievementRepo,
		manager:         adaptive.NewManager(store),
		emotions:        adaptive.NewEmotionManager(),
	}
}

// GetOrCreateProfile ensures a profile exists for the child and returns a
// snapshot of it.
func (s *ProfileService) GetOrCreateProfile(name string, age int) *models.LearnerProfile {
	return s.snapshot(s.liveProfile(name, age))
}

// GetProfile returns a snapshot of the profile for a child name, or nil when
// none exists in memory or the durable store.
func (s *ProfileService) GetProfile(name string) *models.LearnerProfile {
	profile := s.loadProfile(name)
	if profile == nil {
		return nil
	}
	return s.snapshot(profile)
}

// ProcessInteraction applies one interaction to a child's profile under the
// per-profile lock. The update is atomic: an invalid interaction is rejected
// before any field changes.
func (s *ProfileService) ProcessInteraction(ctx context.Context, name string, age int, interaction *models.Interaction, storyParams map[string]interface{}) (*InteractionOutcome, error) {
	profile := s.liveProfile(name, age)

	var outcome *InteractionOutcome
	err := s.store.WithProfileLock(profile.ID, func() error {
		if err := s.manager.UpdateFromInteraction(profile, interaction); err != nil {
			return err
		}
		emotion := s.emotions.Process(profile, interaction, storyParams)
		outcome = &InteractionOutcome{Profile: profile.Clone(), Emotion: emotion}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.persist(ctx, outcome.Profile, outcome.Emotion.NewAchievements)
	return outcome, nil
}

// Recommendations returns ranked story suggestions for a child. Calling it
// twice without an intervening interaction yields identical output.
func (s *ProfileService) Recommendations(name string, age int) []models.Recommendation {
	profile := s.liveProfile(name, age)
	var recs []models.Recommendation
	s.store.WithProfileLock(profile.ID, func() error {
		recs = s.manager.Recommendations(profile)
		return nil
	})
	return recs
}

// StoryParameters builds the adaptive bundle for the story-generation
// collaborator.
func (s *ProfileService) StoryParameters(name string, age int, theme string) models.StoryParameters {
	profile := s.liveProfile(name, age)
	var params models.StoryParameters
	s.store.WithProfileLock(profile.ID, func() error {
		params = s.manager.StoryParameters(profile, theme)
		return nil
	})
	return params
}

// PrimaryGap picks the learning focus for a story when the caller has no
// preference.
func (s *ProfileService) PrimaryGap(name string, age int) adaptive.Focus {
	profile := s.liveProfile(name, age)
	var gap adaptive.Focus
	s.store.WithProfileLock(profile.ID, func() error {
		gap = s.manager.PrimaryGap(profile)
		return nil
	})
	return gap
}

// AchievementProgress reports earned achievements plus progress toward the
// counter-backed ones still open.
func (s *ProfileService) AchievementProgress(name string, age int) (earned []string, progress map[string]models.AchievementProgress) {
	profile := s.liveProfile(name, age)
	s.store.WithProfileLock(profile.ID, func() error {
		earned = append([]string(nil), profile.Achievements...)
		progress = s.emotions.Progress(profile)
		return nil
	})
	return earned, progress
}

// AchievementHistory returns the durable unlock records for a child. Without
// a backend it returns nil.
func (s *ProfileService) AchievementHistory(ctx context.Context, name string) ([]models.Achievement, error) {
	if s.achievementRepo == nil {
		return nil, nil
	}
	return s.achievementRepo.FindByProfile(ctx, adaptive.ProfileKey(name))
}

// ListProfiles returns stored profiles from the durable backend. Without a
// backend it returns nil.
func (s *ProfileService) ListProfiles(ctx context.Context, limit int64) ([]models.LearnerProfile, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx, limit)
}

// liveProfile returns the mutable in-memory profile, hydrating from the
// durable backend first so profiles survive a restart. The live pointer
// stays inside the service.
func (s *ProfileService) liveProfile(name string, age int) *models.LearnerProfile {
	if profile := s.loadProfile(name); profile != nil {
		return profile
	}
	return s.manager.GetOrCreateProfile(name, age)
}

// loadProfile looks up the in-memory profile, falling back to the durable
// backend on a miss. Returns nil when the profile exists nowhere.
func (s *ProfileService) loadProfile(name string) *models.LearnerProfile {
	key := adaptive.ProfileKey(name)
	if profile, ok := s.store.Get(key); ok {
		return profile
	}
	if s.repo == nil {
		return nil
	}
	stored, err := s.repo.FindByKey(context.Background(), key)
	if err != nil {
		log.Printf("profile load failed for %s: %v", key, err)
		return nil
	}
	if stored == nil {
		return nil
	}
	return s.store.GetOrCreate(key, func() *models.LearnerProfile { return stored })
}

// snapshot deep-copies a profile under its lock so the copy is a consistent
// point-in-time view.
func (s *ProfileService) snapshot(profile *models.LearnerProfile) *models.LearnerProfile {
	var snap *models.LearnerProfile
	s.store.WithProfileLock(profile.ID, func() error {
		snap = profile.Clone()
		return nil
	})
	return snap
}

// persist writes through to mongo when backends are configured. Failures
// are logged, not surfaced: the in-memory state is already consistent.
func (s *ProfileService) persist(ctx context.Context, profile *models.LearnerProfile, unlocked []models.Achievement) {
	if s.repo != nil {
		if err := s.repo.Upsert(ctx, profile); err != nil {
			log.Printf("profile upsert failed for %s: %v", profile.ID, err)
		}
	}
	if s.achievementRepo != nil {
		if err := s.achievementRepo.Record(ctx, profile.ID, unlocked); err != nil {
			log.Printf("achievement record failed for %s: %v", profile.ID, err)
		}
	}
}
