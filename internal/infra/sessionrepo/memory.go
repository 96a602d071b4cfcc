package sessionrepo

import (
	"context"
	"sync"

	"github.com/surfapp/recommender/internal/domain/recommend"
)

// MemoryRepository keeps sessions in process memory for tests and dev runs.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]recommend.Session
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string][]recommend.Session)}
}

// Add records sessions for a user.
func (r *MemoryRepository) Add(userID string, sessions ...recommend.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[userID] = append(r.sessions[userID], sessions...)
}

// RecentSessions implements recommend.SessionHistory.
func (r *MemoryRepository) RecentSessions(_ context.Context, userID string) ([]recommend.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.sessions[userID]
	out := make([]recommend.Session, len(stored))
	copy(out, stored)
	return out, nil
}

var _ recommend.SessionHistory = (*MemoryRepository)(nil)
