package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legiscan-go/legiscan/api"
)

func TestFetchReturnsBody(t *testing.T) {
	var gotAccept, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	f := New(srv.Client(), nil)
	body, err := f.Fetch(context.Background(), "getBill", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"OK"}`, string(body))
	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotReqID)
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := New(srv.Client(), nil)
	_, err := f.Fetch(context.Background(), "getBill", srv.URL)
	var terr *api.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, http.StatusServiceUnavailable, terr.Status)
	assert.Equal(t, "getBill", terr.Op)
	// the upstream body survives as the cause
	require.Error(t, terr.Err)
	assert.Contains(t, terr.Err.Error(), "nope")
	assert.Contains(t, terr.Error(), "nope")
}

func TestFetchNon2xxEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := New(srv.Client(), nil)
	_, err := f.Fetch(context.Background(), "getBill", srv.URL)
	var terr *api.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Contains(t, terr.Err.Error(), http.StatusText(http.StatusBadGateway))
}

func TestFetchConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	f := New(&http.Client{Timeout: time.Second}, nil)
	_, err := f.Fetch(context.Background(), "getPerson", srv.URL)
	var terr *api.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Zero(t, terr.Status)
	assert.Error(t, terr.Err)
}
