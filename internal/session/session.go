// Package session keeps the per-visitor page state: the active stage filter
// and the modals that are open. State lives in memory only.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"meryerevan.am/internal/forms"
	"meryerevan.am/internal/models"
)

// CookieName carries the session id.
const CookieName = "sid"

// State is the top-level view state of one visitor.
type State struct {
	mu     sync.Mutex
	filter models.Stage

	Project    *forms.ProjectModal
	Contact    *forms.ContactModal
	Suggestion *forms.Modal
	About      *forms.Modal
}

// NewState assembles a State showing filter with every modal closed.
func NewState(filter models.Stage, project *forms.ProjectModal, contact *forms.ContactModal, suggestion, about *forms.Modal) *State {
	return &State{
		filter:     filter,
		Project:    project,
		Contact:    contact,
		Suggestion: suggestion,
		About:      about,
	}
}

// Filter returns the active stage filter.
func (s *State) Filter() models.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter changes the active stage filter.
func (s *State) SetFilter(stage models.Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = stage
}

// CloseAll cancels every open modal, topmost first.
func (s *State) CloseAll() {
	s.Contact.Cancel()
	s.Suggestion.Cancel()
	s.About.Cancel()
	s.Project.Close()
}

// Factory builds a fresh State for a new visitor.
type Factory func() *State

type entry struct {
	state    *State
	lastSeen time.Time
}

// Store maps session ids to State.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	factory  Factory
	ttl      time.Duration
	now      func() time.Time

	stop chan struct{}
	done chan struct{}
}

// NewStore creates a store whose idle sessions expire after ttl. A janitor
// goroutine sweeps expired sessions every sweep interval until Close.
func NewStore(factory Factory, ttl, sweep time.Duration) *Store {
	if sweep <= 0 {
		sweep = time.Minute
	}
	s := &Store{
		sessions: map[string]*entry{},
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.janitor(sweep)
	return s
}

// Get returns the state for id, creating a new session when id is unknown
// or expired. The returned id is the one to hand back to the client.
func (s *Store) Get(id string) (*State, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if e, ok := s.sessions[id]; ok && now.Sub(e.lastSeen) <= s.ttl {
		e.lastSeen = now
		return e.state, id, false
	}
	newID := uuid.NewString()
	st := s.factory()
	s.sessions[newID] = &entry{state: st, lastSeen: now}
	return st, newID, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and closes their modals.
func (s *Store) Sweep() int {
	s.mu.Lock()
	now := s.now()
	var expired []*State
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			expired = append(expired, e.state)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
	for _, st := range expired {
		st.CloseAll()
	}
	return len(expired)
}

// Close stops the janitor.
func (s *Store) Close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

func (s *Store) janitor(every time.Duration) {
	defer close(s.done)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.Sweep()
		case <-s.stop:
			return
		}
	}
}

type ctxKey struct{}

// Middleware attaches the visitor's State to the request context and
// refreshes the session cookie.
func Middleware(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(CookieName); err == nil {
				id = c.Value
			}
			st, id, created := store.Get(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, st)))
		})
	}
}

// FromContext returns the State attached by Middleware.
func FromContext(ctx context.Context) (*State, bool) {
	st, ok := ctx.Value(ctxKey{}).(*State)
	return st, ok
}
