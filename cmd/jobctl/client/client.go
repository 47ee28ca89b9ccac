package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client interface for interacting with the jobhost API
type Client interface {
	Health() (*HealthResponse, error)
	ListRuns(filters *ListRunsRequest) ([]Run, error)
}

// HTTPClient implements the Client interface
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// HealthResponse represents the host's health report
type HealthResponse struct {
	Ok           bool   `json:"ok"`
	Version      string `json:"version"`
	ShuttingDown bool   `json:"shutting_down"`
}

// ListRunsRequest filters the run listing
type ListRunsRequest struct {
	Job    string
	Status string
	Limit  int
}

// Run represents a job run from the API
type Run struct {
	ID         string    `json:"id"`
	JobName    string    `json:"job_name"`
	Status     string    `json:"status"`
	Output     string    `json:"output"`
	Error      string    `json:"error"`
	ExitCode   int       `json:"exit_code"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Health fetches the host's health report
func (c *HTTPClient) Health() (*HealthResponse, error) {
	body, err := c.get(c.baseURL + "/health")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &health, nil
}

// ListRuns fetches run history, optionally filtered
func (c *HTTPClient) ListRuns(filters *ListRunsRequest) ([]Run, error) {
	endpoint := c.baseURL + "/api/v1/runs"
	if filters != nil {
		params := url.Values{}
		if filters.Job != "" {
			params.Set("job", filters.Job)
		}
		if filters.Status != "" {
			params.Set("status", filters.Status)
		}
		if filters.Limit > 0 {
			params.Set("limit", fmt.Sprintf("%d", filters.Limit))
		}
		if encoded := params.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	body, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}

	var runs []Run
	if err := json.Unmarshal(body, &runs); err != nil {
		return nil, fmt.Errorf("failed to decode runs response: %w", err)
	}
	return runs, nil
}

func (c *HTTPClient) get(endpoint string) ([]byte, error) {
	resp, err := c.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
