package repository

import (
	"sync"

	"story-service/internal/models"
)

// MemoryProfileStore is the in-memory profile store. Reads are concurrent;
// mutations for the same profile must be serialized, which callers get by
// wrapping update sequences in WithProfileLock.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.LearnerProfile

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{
		profiles: map[string]*models.LearnerProfile{},
		locks:    map[string]*sync.Mutex{},
	}
}

func (s *MemoryProfileStore) Get(key string) (*models.LearnerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[key]
	return profile, ok
}

func (s *MemoryProfileStore) Put(key string, profile *models.LearnerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[key] = profile
}

func (s *MemoryProfileStore) GetOrCreate(key string, create func() *models.LearnerProfile) *models.LearnerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile, ok := s.profiles[key]; ok {
		return profile
	}
	profile := create()
	s.profiles[key] = profile
	return profile
}

// WithProfileLock runs fn while holding this profile's mutation lock.
// Interaction processing for one profile is not commutative (EMA updates,
// achievement unlocks, history appends), so concurrent updates to the same
// key go through here one at a time. Different profiles run in parallel.
func (s *MemoryProfileStore) WithProfileLock(key string, fn func() error) error {
	s.locksMu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// Count returns the number of stored profiles.
func (s *MemoryProfileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
