package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/georgemunganga/venuehub-backend/internal/client/store"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	return runWithStore(t, store.New(store.State{}), srv, args...)
}

func runWithStore(t *testing.T, st *store.Store, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWithStore(st)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", srv.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginPrintsExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"tok-1"}}`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "login", "--email", "admin@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "export VENUECTL_TOKEN=tok-1")
}

func TestVenuesRejectSendsReason(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		var req venue.StatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, venue.StatusRejected, req.Status)
		assert.Equal(t, "duplicate listing", req.Reason)
		w.Write([]byte(`{"success":true,"data":{"id":"` + id.String() + `","status":"REJECTED"}}`))
	}))
	defer srv.Close()

	t.Setenv(tokenEnv, "admin-token")
	out, err := run(t, srv, "venues", "reject", id.String(), "--reason", "duplicate listing")
	require.NoError(t, err)
	assert.Contains(t, out, id.String()+" REJECTED")
}

func TestVenuesRejectRequiresReason(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := run(t, srv, "venues", "reject", uuid.NewString())
	assert.Error(t, err)
}

func TestVenuesListSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"message":"forbidden"}`))
	}))
	defer srv.Close()

	_, err := run(t, srv, "venues", "list", "--status", "pending")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestDonationsSetStatusRejectsBadID(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := run(t, srv, "donations", "set-status", "nope", "approved")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "nope"`)
}

func TestVenueCommandsKeepStoreInSync(t *testing.T) {
	pending, other := uuid.New(), uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"success":true,"data":[` +
				`{"id":"` + pending.String() + `","name":"Lakeview","status":"PENDING"},` +
				`{"id":"` + other.String() + `","name":"Annapurna","status":"PENDING"}` +
				`],"total":2,"page":1,"limit":20}`))
		case http.MethodPatch:
			w.Write([]byte(`{"success":true,"data":{"id":"` + pending.String() + `","name":"Lakeview","status":"APPROVED"}}`))
		}
	}))
	defer srv.Close()

	st := store.New(store.State{})
	out, err := runWithStore(t, st, srv, "venues", "list", "--status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "Lakeview")
	assert.Contains(t, out, "page 1, 2 of 2")
	require.Len(t, st.State().Venues, 2)
	assert.False(t, st.State().Loading)

	_, err = runWithStore(t, st, srv, "venues", "approve", pending.String())
	require.NoError(t, err)
	venues := st.State().Venues
	require.Len(t, venues, 2)
	assert.Equal(t, venue.StatusApproved, venues[0].Status)
	assert.Equal(t, venue.StatusPending, venues[1].Status)
}

func TestVenuesListRecordsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"message":"database unavailable"}`))
	}))
	defer srv.Close()

	st := store.New(store.State{})
	_, err := runWithStore(t, st, srv, "venues", "list")
	require.Error(t, err)
	assert.Contains(t, st.State().Error, "database unavailable")
	assert.False(t, st.State().Loading)
}
