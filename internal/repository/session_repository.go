package repository

import (
	"fmt"
	"sync"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// SessionRepository implements the domain.SessionRepository interface with an
// in-memory map. An editing session lives exactly as long as the surface that
// owns it; nothing survives a process restart.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	logger   domain.Logger
}

func NewSessionRepository(logger domain.Logger) domain.SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*domain.Session),
		logger:   logger,
	}
}

func (r *SessionRepository) Create(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.sessions[session.ID] = session
	r.logger.Debug("Session stored", "session_id", session.ID, "total", len(r.sessions))
	return nil
}

func (r *SessionRepository) Get(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
