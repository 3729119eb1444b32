package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSRMClientRoutes(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 1234.5,
				"duration": 300.0,
				"geometry": {"coordinates": [[103.80, 1.30], [103.81, 1.31]]}
			}]
		}`))
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	routes, err := client.Routes(context.Background(), 1.30, 103.80, 1.31, 103.81, true)
	require.NoError(t, err)
	require.Len(t, routes, 1)

	assert.Equal(t, 1234.5, routes[0].DistanceMeters)
	assert.Equal(t, 300.0, routes[0].DurationSeconds)
	assert.Len(t, routes[0].Coords, 2)

	// OSRM expects lon,lat pairs and the bike profile
	assert.Contains(t, gotPath, "/route/v1/bike/")
	assert.Contains(t, gotPath, "103.80")
	assert.Contains(t, gotPath, "alternatives=true")
}

func TestOSRMClientNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	_, err := client.Routes(context.Background(), 1.30, 103.80, 1.31, 103.81, false)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestOSRMClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	_, err := client.Routes(context.Background(), 1.30, 103.80, 1.31, 103.81, false)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "502"))
}

func TestOSRMClientContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	_, err := client.Routes(ctx, 1.30, 103.80, 1.31, 103.81, false)
	assert.Error(t, err)
}
