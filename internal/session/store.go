package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/navigator"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPageNotActive   = errors.New("page not active")
)

const initialLocation = "/"

// Session is one client's host environment: a location and the navigator
// driving it. Every trigger runs under mu, so a session processes one event
// at a time.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	clock    func() time.Time
	nav      *navigator.Navigator
}

// Do runs fn with exclusive access to the session's navigator.
func (s *Session) Do(fn func(nav *navigator.Navigator) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.clock()
	return fn(s.nav)
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// WithPage runs fn against the active page state when the navigator is
// on route and its state has type T.
func WithPage[T any](s *Session, route routes.Key, fn func(page T) error) error {
	return s.Do(func(nav *navigator.Navigator) error {
		if nav.Current() != route {
			return ErrPageNotActive
		}
		page, ok := nav.Page().(T)
		if !ok {
			return ErrPageNotActive
		}
		return fn(page)
	})
}

type Store struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*Session
	factories map[routes.Key]navigator.Factory
	ttl       time.Duration
	now       func() time.Time
}

func NewStore(factories map[routes.Key]navigator.Factory, ttl time.Duration) *Store {
	return &Store{
		sessions:  make(map[uuid.UUID]*Session),
		factories: factories,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (st *Store) Create(ctx context.Context) *Session {
	id := uuid.New()
	hook := navigator.WithTransitionHook(func(from, to routes.Key) {
		config.Logger.WithFields(logrus.Fields{
			"session_id": id.String(),
			"from":       from,
			"to":         to,
		}).Info("Route changed")
	})

	now := st.now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		clock:     st.now,
		nav:       navigator.New(st.factories, initialLocation, hook),
	}

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()

	config.WithContext(config.ContextWithSessionID(ctx, id.String())).Info("Session created")
	return s
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	if st.ttl > 0 && s.idleSince(st.now()) > st.ttl {
		st.Delete(id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops every session idle for longer than the TTL and returns how
// many were removed.
func (st *Store) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}
	now := st.now()

	// Session locks are taken after the store lock is released, so a session
	// busy in Do only delays its own check.
	st.mu.RLock()
	all := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		all = append(all, s)
	}
	st.mu.RUnlock()

	removed := 0
	for _, s := range all {
		if s.idleSince(now) > st.ttl {
			st.Delete(s.ID)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (st *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	log := config.WithContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.WithField("expired", n).Info("Expired sessions removed")
			}
		}
	}
}
