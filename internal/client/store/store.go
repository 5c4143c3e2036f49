// Package store holds client-side venue state behind a reducer.
package store

import (
	"sync"

	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/google/uuid"
)

type ActionType string

const (
	SetVenues   ActionType = "SET_VENUES"
	AddVenue    ActionType = "ADD_VENUE"
	UpdateVenue ActionType = "UPDATE_VENUE"
	DeleteVenue ActionType = "DELETE_VENUE"
	SetLoading  ActionType = "SET_LOADING"
	SetError    ActionType = "SET_ERROR"
)

// Action carries the payload relevant to its Type; other fields are ignored.
type Action struct {
	Type    ActionType
	Venues  []venue.Venue
	Venue   venue.Venue
	ID      uuid.UUID
	Loading bool
	Err     string
}

type State struct {
	Venues  []venue.Venue
	Loading bool
	Error   string
}

// Reduce returns the state after applying a. The input state is never
// modified; unknown action types return it unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case SetVenues:
		s.Venues = append([]venue.Venue(nil), a.Venues...)
	case AddVenue:
		next := make([]venue.Venue, 0, len(s.Venues)+1)
		s.Venues = append(append(next, s.Venues...), a.Venue)
	case UpdateVenue:
		next := make([]venue.Venue, len(s.Venues))
		copy(next, s.Venues)
		for i := range next {
			if next[i].ID == a.Venue.ID {
				next[i] = a.Venue
			}
		}
		s.Venues = next
	case DeleteVenue:
		next := make([]venue.Venue, 0, len(s.Venues))
		for _, v := range s.Venues {
			if v.ID != a.ID {
				next = append(next, v)
			}
		}
		s.Venues = next
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Error = a.Err
	}
	return s
}

// Store is a Reduce-backed state container safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
