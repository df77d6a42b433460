// Package roster provides the roster state, the reducer that transitions it
// and the loader that seeds it.
package roster

import (
	"context"
	"slices"
	"sync"

	"github.com/ardanlabs/roster/roster/foundation/logger"
)

// Store owns the current roster state. Every dispatch replaces the state
// with the reducer's result while holding the lock, so transitions are
// totally ordered.
type Store struct {
	log     *logger.Logger
	reducer Reducer
	rand    Random
	state   State
	mu      sync.RWMutex
}

// NewStore constructs an empty store.
func NewStore(log *logger.Logger, rnd Random) *Store {
	s := Store{
		log:     log,
		reducer: NewReducer(rnd),
		rand:    rnd,
	}

	return &s
}

// Dispatch applies the action and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if action.Kind == KindAddUser && s.hasID(action.User.ID) {
		s.log.Warn(ctx, "roster-dispatch", "status", "duplicate id", "id", action.User.ID, "username", action.User.Username)
	}

	s.state = s.reducer.Reduce(s.state, action)

	s.log.Debug(ctx, "roster-dispatch", "kind", action.Kind.String(), "users", len(s.state.Users), "removed", len(s.state.RemovedUsers), "count", s.state.Count)

	return s.state
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Visible returns the roster entries matching the current search text.
func (s *Store) Visible() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Visible(s.state)
}

// Load transforms the records and dispatches one AddUser per resulting user
// in order. It returns the number of users added.
func (s *Store) Load(ctx context.Context, records []Record) int {
	users := Transform(records, s.rand)

	for _, u := range users {
		s.Dispatch(ctx, AddUser(u))
	}

	s.log.Info(ctx, "roster-load", "records", len(records), "users", len(users))

	return len(users)
}

func (s *Store) hasID(id string) bool {
	match := func(u User) bool {
		return u.ID == id
	}

	return slices.ContainsFunc(s.state.Users, match) || slices.ContainsFunc(s.state.RemovedUsers, match)
}
