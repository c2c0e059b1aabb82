package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned when a session ID is unknown or already
// discarded.
var ErrSessionNotFound = errors.New("session not found")

// Manager owns every live session and its countdown goroutine. Each session
// has exactly one owner for its lifetime; nothing outside this package
// mutates answers, the question pointer or the clock.
type Manager struct {
	provider QuestionProvider
	sink     ResultSink

	tickInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option configures a Manager.
type Option func(*Manager)

// WithTickInterval overrides the one-second countdown cadence. Tests use a
// long interval and drive Tick directly.
func WithTickInterval(d time.Duration) Option {
	return func(m *Manager) { m.tickInterval = d }
}

// NewManager builds a session manager over a question provider and a result
// sink.
func NewManager(provider QuestionProvider, sink ResultSink, opts ...Option) *Manager {
	m := &Manager{
		provider:     provider,
		sink:         sink,
		tickInterval: time.Second,
		sessions:     make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start fetches the question sequence for a test and opens a new in-progress
// session with its countdown running. An empty or failed fetch is reported
// as ErrNoQuestionsAvailable and no session is created.
func (m *Manager) Start(ctx context.Context, test TestRef, user Identity) (*Session, error) {
	questions, err := m.provider.Fetch(ctx, test.Type, test.ID)
	if err != nil {
		log.Warn().Err(err).
			Str("test_type", test.Type).
			Str("test_id", test.ID).
			Msg("Question fetch failed at session start")
		return nil, ErrNoQuestionsAvailable
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	s := newSession(uuid.NewString(), test, user, questions, m.sink)

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	go m.runTimer(s)

	log.Info().
		Str("session_id", s.id).
		Str("test_type", test.Type).
		Str("test_id", test.ID).
		Str("user_id", user.ID).
		Int("question_count", len(questions)).
		Int("duration_seconds", DurationFor(test.Type)).
		Msg("Session started")
	return s, nil
}

// runTimer drives the session countdown at a fixed cadence until the session
// leaves InProgress. The Done channel guarantees the ticker is torn down the
// moment completion commits, on either path.
func (m *Manager) runTimer(s *Session) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Get looks up a live or completed session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Discard drops a session from the registry. An in-progress session is
// abandoned without emitting a Result.
func (m *Manager) Discard(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.abandon()
	log.Info().Str("session_id", id).Msg("Session discarded")
	return nil
}

// Active returns the number of registered sessions.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
