package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"story-service/internal/models"
	"story-service/internal/repository"
)

// fakeProfileBackend is an in-memory stand-in for the mongo profile
// repository.
type fakeProfileBackend struct {
	mu       sync.Mutex
	profiles map[string]*models.LearnerProfile
	upserts  int
}

func newFakeProfileBackend() *fakeProfileBackend {
	return &fakeProfileBackend{profiles: map[string]*models.LearnerProfile{}}
}

func (b *fakeProfileBackend) FindByKey(ctx context.Context, key string) (*models.LearnerProfile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	profile, ok := b.profiles[key]
	if !ok {
		return nil, nil
	}
	return profile.Clone(), nil
}

func (b *fakeProfileBackend) Upsert(ctx context.Context, profile *models.LearnerProfile) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles[profile.ID] = profile.Clone()
	b.upserts++
	return nil
}

func (b *fakeProfileBackend) List(ctx context.Context, limit int64) ([]models.LearnerProfile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []models.LearnerProfile
	for _, profile := range b.profiles {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, *profile.Clone())
	}
	return out, nil
}

// fakeAchievementBackend records unlocks in memory.
type fakeAchievementBackend struct {
	mu      sync.Mutex
	records map[string][]models.Achievement
}

func newFakeAchievementBackend() *fakeAchievementBackend {
	return &fakeAchievementBackend{records: map[string][]models.Achievement{}}
}

func (b *fakeAchievementBackend) Record(ctx context.Context, profileKey string, achievements []models.Achievement) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[profileKey] = append(b.records[profileKey], achievements...)
	return nil
}

func (b *fakeAchievementBackend) FindByProfile(ctx context.Context, profileKey string) ([]models.Achievement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Achievement(nil), b.records[profileKey]...), nil
}

func TestProfileSnapshotsAreDetached(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfileService(repository.NewMemoryProfileStore(), nil, nil)

	correct := true
	responseTime := 5.0
	if _, err := profiles.ProcessInteraction(ctx, "Emma", 6, testInteraction("dragons", "math", &correct, &responseTime), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	before := profiles.GetProfile("Emma")
	if before == nil {
		t.Fatal("Expected a profile for Emma")
	}

	if _, err := profiles.ProcessInteraction(ctx, "Emma", 6, testInteraction("pirates", "vocabulary", &correct, &responseTime), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The earlier snapshot did not move with the profile.
	if len(before.InteractionHistory) != 1 {
		t.Errorf("Expected snapshot history to stay at 1, got %d", len(before.InteractionHistory))
	}
	if before.AchievementStats.ThemesExplored["pirates"] {
		t.Error("Expected snapshot theme set to exclude the later theme")
	}

	after := profiles.GetProfile("Emma")
	if len(after.InteractionHistory) != 2 {
		t.Errorf("Expected fresh snapshot history of 2, got %d", len(after.InteractionHistory))
	}
	if !after.AchievementStats.ThemesExplored["pirates"] {
		t.Error("Expected fresh snapshot to include the later theme")
	}
}

func TestConcurrentReadsDuringProcessing(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfileService(repository.NewMemoryProfileStore(), nil, nil)

	correct := true
	responseTime := 5.0
	if _, err := profiles.ProcessInteraction(ctx, "Emma", 6, testInteraction("dragons", "math", &correct, &responseTime), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if _, err := profiles.ProcessInteraction(ctx, "Emma", 6, testInteraction("dragons", "math", &correct, &responseTime), nil); err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			profile := profiles.GetProfile("Emma")
			if profile == nil {
				t.Error("Expected a profile for Emma")
				return
			}
			if _, err := json.Marshal(profile); err != nil {
				t.Errorf("Unexpected marshal error: %v", err)
				return
			}
		}
	}()
	wg.Wait()
}

func TestProfileHydratesFromBackend(t *testing.T) {
	ctx := context.Background()
	backend := newFakeProfileBackend()

	// First process: profile is written through to the backend.
	first := NewProfileService(repository.NewMemoryProfileStore(), backend, nil)
	correct := true
	responseTime := 5.0
	if _, err := first.ProcessInteraction(ctx, "Emma", 6, testInteraction("dragons", "math", &correct, &responseTime), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if backend.upserts != 1 {
		t.Fatalf("Expected 1 upsert, got %d", backend.upserts)
	}

	// A fresh service with an empty memory store finds the stored profile.
	second := NewProfileService(repository.NewMemoryProfileStore(), backend, nil)
	profile := second.GetProfile("Emma")
	if profile == nil {
		t.Fatal("Expected the profile to hydrate from the backend")
	}
	if len(profile.InteractionHistory) != 1 {
		t.Errorf("Expected hydrated history of 1, got %d", len(profile.InteractionHistory))
	}

	// Further interactions build on the hydrated state.
	outcome, err := second.ProcessInteraction(ctx, "Emma", 6, testInteraction("pirates", "math", &correct, &responseTime), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(outcome.Profile.InteractionHistory) != 2 {
		t.Errorf("Expected history of 2 after hydration, got %d", len(outcome.Profile.InteractionHistory))
	}
}

func TestAchievementHistoryFromBackend(t *testing.T) {
	ctx := context.Background()
	achievements := newFakeAchievementBackend()
	profiles := NewProfileService(repository.NewMemoryProfileStore(), nil, achievements)

	correct := true
	responseTime := 5.0
	interaction := testInteraction("dragons", "math", &correct, &responseTime)
	interaction.StoryCompleted = true
	if _, err := profiles.ProcessInteraction(ctx, "Emma", 6, interaction, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	history, err := profiles.AchievementHistory(ctx, "Emma")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(history) == 0 {
		t.Fatal("Expected recorded unlocks in the history")
	}
	found := false
	for _, a := range history {
		if a.ID == "first_story_complete" {
			found = true
		}
	}
	if !found {
		t.Error("Expected first_story_complete in the durable history")
	}
}

func TestListProfilesFromBackend(t *testing.T) {
	ctx := context.Background()
	backend := newFakeProfileBackend()
	profiles := NewProfileService(repository.NewMemoryProfileStore(), backend, nil)

	correct := true
	responseTime := 5.0
	for _, name := range []string{"Emma", "Liam"} {
		if _, err := profiles.ProcessInteraction(ctx, name, 6, testInteraction("dragons", "math", &correct, &responseTime), nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	list, err := profiles.ListProfiles(ctx, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 stored profiles, got %d", len(list))
	}

	// Memory-only services report nothing rather than failing.
	memOnly := NewProfileService(repository.NewMemoryProfileStore(), nil, nil)
	list, err = memOnly.ListProfiles(ctx, 10)
	if err != nil || list != nil {
		t.Errorf("Expected nil list without a backend, got %v (%v)", list, err)
	}
}
