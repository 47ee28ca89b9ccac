package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealth_DecodesResponse - health report round-trips from the server
func TestHealth_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"version":"0.1.0","shutting_down":true}`))
	}))
	defer server.Close()

	health, err := NewHTTPClient(server.URL).Health()

	require.NoError(t, err)
	assert.True(t, health.Ok)
	assert.True(t, health.ShuttingDown)
}

// TestListRuns_SendsFilters - job and limit become query parameters
func TestListRuns_SendsFilters(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"run_1","job_name":"metricsjob"}]`))
	}))
	defer server.Close()

	runs, err := NewHTTPClient(server.URL).ListRuns(&ListRunsRequest{Job: "metricsjob", Limit: 5})

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run_1", runs[0].ID)
	assert.Contains(t, query, "job=metricsjob")
	assert.Contains(t, query, "limit=5")
}

// TestListRuns_ServerError - non-200 responses surface as errors
func TestListRuns_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL).ListRuns(nil)

	assert.Error(t, err)
}
