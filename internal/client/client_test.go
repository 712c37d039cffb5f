package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func newMockedClient() (*Client, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	return New("http://scheduler:9095/", &http.Client{Transport: transport}), transport
}

func sampleRequest() requests.ScheduleRequest {
	return requests.ScheduleRequest{
		Processes:   []requests.Job{{ArrivalTime: 0, BurstTime: 3, Priority: 1}},
		TimeQuantum: 2,
	}
}

func TestClient_Simulate(t *testing.T) {
	c, transport := newMockedClient()
	transport.RegisterResponder(http.MethodPost, "http://scheduler:9095/api/v1/rr",
		func(req *http.Request) (*http.Response, error) {
			var body requests.ScheduleRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, `{"error":"invalid request format"}`), nil
			}
			assert.Equal(t, sampleRequest(), body)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			return httpmock.NewStringResponse(http.StatusOK, `{
				"policy": "rr",
				"time_quantum": 2,
				"details": [{"process_id": 1, "start_time": 0, "completion_time": 3, "turn_around_time": 3}],
				"gantt": [{"process_id": 1, "start": 0, "duration": 2}, {"process_id": 1, "start": 2, "duration": 1}]
			}`), nil
		})

	response, err := c.Simulate(context.Background(), schedulers.RoundRobin, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "rr", response.Policy)
	assert.Equal(t, 2, response.TimeQuantum)
	require.Len(t, response.Details, 1)
	assert.True(t, response.Details[0].StartTime.Valid)
	assert.Equal(t, 3, response.Details[0].CompletionTime)
	assert.Len(t, response.Gantt, 2)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestClient_SimulateAll(t *testing.T) {
	c, transport := newMockedClient()
	transport.RegisterResponder(http.MethodPost, "http://scheduler:9095/api/v1/all",
		httpmock.NewStringResponder(http.StatusOK, `[{"policy":"fcfs"},{"policy":"sjf"}]`))

	all, err := c.SimulateAll(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "sjf", all[1].Policy)
}

func TestClient_ServerError(t *testing.T) {
	c, transport := newMockedClient()
	transport.RegisterResponder(http.MethodPost, "http://scheduler:9095/api/v1/fcfs",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"process 1: burst time must be positive, got 0"}`))

	_, err := c.Simulate(context.Background(), schedulers.FirstComeFirstServe, sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server returned 400: process 1: burst time must be positive")
}

func TestClient_ServerErrorWithoutBody(t *testing.T) {
	c, transport := newMockedClient()
	transport.RegisterResponder(http.MethodPost, "http://scheduler:9095/api/v1/sjf",
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	_, err := c.Simulate(context.Background(), schedulers.ShortestJobFirst, sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server returned 500")
}
