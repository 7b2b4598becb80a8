package sessionstore

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"sync"
	"time"
)

type memoryEntry struct {
	session   *models.QuestionnaireSession
	expiresAt time.Time
}

// memorySessionStore is a bounded, TTL-expiring in-process session store.
// Expired entries are purged on every write; when the store is full the
// entry closest to expiry is evicted to make room.
type memorySessionStore struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	capacity int
	ttl      time.Duration
}

func NewMemorySessionStore(capacity int, ttl time.Duration) contracts.SessionRepository {
	if capacity <= 0 {
		capacity = 1000
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memorySessionStore{
		entries:  make(map[string]memoryEntry),
		capacity: capacity,
		ttl:      ttl,
	}
}

func (s *memorySessionStore) FindSession(ctx context.Context, sessionID string) (*models.QuestionnaireSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, nil
	}

	return cloneSession(entry.session), nil
}

func (s *memorySessionStore) SaveSession(ctx context.Context, session *models.QuestionnaireSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.purgeExpiredLocked(now)

	if _, exists := s.entries[session.ID]; !exists && len(s.entries) >= s.capacity {
		s.evictClosestToExpiryLocked()
	}

	s.entries[session.ID] = memoryEntry{
		session:   cloneSession(session),
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

// cloneSession copies the session including its response maps, so neither
// side can mutate the other's state outside the store's lock.
func cloneSession(session *models.QuestionnaireSession) *models.QuestionnaireSession {
	copied := *session
	copied.FirstStageResponses = cloneResponses(session.FirstStageResponses)
	copied.SecondStageResponses = cloneResponses(session.SecondStageResponses)
	return &copied
}

func cloneResponses(responses map[string]string) map[string]string {
	if responses == nil {
		return nil
	}
	copied := make(map[string]string, len(responses))
	for question, answer := range responses {
		copied[question] = answer
	}
	return copied
}

func (s *memorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

func (s *memorySessionStore) purgeExpiredLocked(now time.Time) {
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *memorySessionStore) evictClosestToExpiryLocked() {
	var victim string
	var victimExpiry time.Time
	for id, entry := range s.entries {
		if victim == "" || entry.expiresAt.Before(victimExpiry) {
			victim = id
			victimExpiry = entry.expiresAt
		}
	}
	if victim != "" {
		delete(s.entries, victim)
	}
}
