// Package client submits simulations to a remote scheduler API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Simulate runs policy remotely.
func (c *Client) Simulate(ctx context.Context, policy schedulers.Policy, request requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	if err := c.post(ctx, "/api/v1/"+string(policy), request, &response); err != nil {
		return nil, fmt.Errorf("simulating %s: %w", policy, err)
	}
	return &response, nil
}

// SimulateAll runs every policy remotely, in menu order.
func (c *Client) SimulateAll(ctx context.Context, request requests.ScheduleRequest) ([]responses.ScheduleResponse, error) {
	var all []responses.ScheduleResponse
	if err := c.post(ctx, "/api/v1/all", request, &all); err != nil {
		return nil, fmt.Errorf("simulating all policies: %w", err)
	}
	return all, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr responses.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
