package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one viewer's run through their personalized deck. The
// per-session mutex serializes navigation and trivia transitions so a
// double-tap can't skip a slide.
type Session struct {
	mu         sync.Mutex
	ID         string
	Player     PlayerRecord
	Slides     []SlideDescriptor
	Nav        *Navigator
	Trivia     *TriviaGame
	CreatedAt  time.Time
	LastActive time.Time
}

// Touch refreshes the idle timer.
func (s *Session) Touch() {
	s.LastActive = time.Now()
}

// SessionStore keeps live viewing sessions in memory, keyed by uuid.
// Idle sessions are swept out after the configured TTL.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
}

// NewSessionStore creates a store and starts its eviction sweep.
func NewSessionStore(ttl time.Duration) *SessionStore {
	store := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go store.sweep()
	return store
}

// Create registers a new session for a player with a freshly built deck.
func (st *SessionStore) Create(player PlayerRecord, slides []SlideDescriptor, trivia *TriviaGame) *Session {
	summaryIndex := len(slides) - 1
	for i, slide := range slides {
		if slide.Kind == SlideSummary {
			summaryIndex = i
			break
		}
	}

	now := time.Now()
	session := &Session{
		ID:         uuid.NewString(),
		Player:     player,
		Slides:     slides,
		Nav:        NewNavigator(len(slides), summaryIndex),
		Trivia:     trivia,
		CreatedAt:  now,
		LastActive: now,
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()
	return session
}

// Get returns a live session by id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Count returns the number of live sessions.
func (st *SessionStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Stop halts the eviction sweep.
func (st *SessionStore) Stop() {
	close(st.done)
}

func (st *SessionStore) sweep() {
	interval := st.ttl / 2
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.done:
			return
		case now := <-ticker.C:
			st.mu.Lock()
			for id, session := range st.sessions {
				if now.Sub(session.LastActive) > st.ttl {
					delete(st.sessions, id)
				}
			}
			st.mu.Unlock()
		}
	}
}
