package store

import (
	"sync"
	"testing"

	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venues(names ...string) []venue.Venue {
	out := make([]venue.Venue, len(names))
	for i, n := range names {
		out[i] = venue.Venue{ID: uuid.New(), Name: n}
	}
	return out
}

func TestReduce(t *testing.T) {
	base := venues("Grand", "Lotus", "Palace")

	t.Run("set venues", func(t *testing.T) {
		s := Reduce(State{}, Action{Type: SetVenues, Venues: base})
		assert.Equal(t, base, s.Venues)
	})

	t.Run("add appends", func(t *testing.T) {
		in := State{Venues: base}
		added := venue.Venue{ID: uuid.New(), Name: "Annex"}
		s := Reduce(in, Action{Type: AddVenue, Venue: added})
		require.Len(t, s.Venues, 4)
		assert.Equal(t, added, s.Venues[3])
		assert.Len(t, in.Venues, 3)
	})

	t.Run("update replaces by id", func(t *testing.T) {
		in := State{Venues: venues("Grand", "Lotus")}
		changed := in.Venues[1]
		changed.Name = "Lotus Banquet"
		s := Reduce(in, Action{Type: UpdateVenue, Venue: changed})
		assert.Equal(t, "Lotus Banquet", s.Venues[1].Name)
		assert.Equal(t, "Lotus", in.Venues[1].Name)
	})

	t.Run("update of missing id is a no-op", func(t *testing.T) {
		in := State{Venues: base}
		s := Reduce(in, Action{Type: UpdateVenue, Venue: venue.Venue{ID: uuid.New(), Name: "Ghost"}})
		assert.Equal(t, base, s.Venues)
	})

	t.Run("delete filters by id", func(t *testing.T) {
		in := State{Venues: base}
		s := Reduce(in, Action{Type: DeleteVenue, ID: base[0].ID})
		require.Len(t, s.Venues, 2)
		assert.Equal(t, "Lotus", s.Venues[0].Name)
		assert.Len(t, in.Venues, 3)
		assert.Equal(t, "Grand", in.Venues[0].Name)
	})

	t.Run("loading and error flags", func(t *testing.T) {
		s := Reduce(State{Venues: base}, Action{Type: SetLoading, Loading: true})
		assert.True(t, s.Loading)
		s = Reduce(s, Action{Type: SetError, Err: "network down"})
		assert.Equal(t, "network down", s.Error)
		assert.Equal(t, base, s.Venues)
	})

	t.Run("unknown action", func(t *testing.T) {
		in := State{Venues: base, Loading: true}
		assert.Equal(t, in, Reduce(in, Action{Type: "RESET"}))
	})
}

func TestStoreConcurrentDispatch(t *testing.T) {
	st := New(State{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(Action{Type: AddVenue, Venue: venue.Venue{ID: uuid.New()}})
		}()
	}
	wg.Wait()
	assert.Len(t, st.State().Venues, 50)
}
