package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Policy:                "rr",
		Title:                 "Round Robin",
		TimeQuantum:           2,
		TotalTime:             7,
		IdleTime:              2,
		AverageWaitingTime:    1.5,
		AverageTurnAroundTime: 4,
		AverageResponseTime:   0.5,
		CpuUtilization:        5.0 / 7,
		CpuThroughput:         2.0 / 7,
		ContextSwitches:       1,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 3, Priority: 1, StartTime: core.TickOf(0), CompletionTime: 3, TurnAroundTime: 3},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 2, Priority: 0, StartTime: core.TickOf(3), CompletionTime: 5, WaitingTime: 2, TurnAroundTime: 4},
		},
		Gantt: []core.Event{
			{ProcessID: 1, Start: 0, Duration: 3},
			{ProcessID: 2, Start: 3, Duration: 2},
			{Idle: true, Start: 5, Duration: 2},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResponse())

	out := buf.String()
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "Average Waiting Time: 1.50")
	assert.Contains(t, out, "Average Turnaround Time: 4.00")
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, responses.ScheduleResponse{})
	assert.Equal(t, "No processes to display.\n", buf.String())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, sampleResponse(), 80)

	out := buf.String()
	assert.Contains(t, out, "Round Robin Scheduling Simulation Results (quantum 2)")
	assert.Contains(t, out, "71.43%")
	assert.Contains(t, out, "Gantt Chart:")
}

func TestWriteGantt(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, []core.Event{
		{ProcessID: 1, Start: 0, Duration: 2},
		{ProcessID: 1, Start: 2, Duration: 1},
		{ProcessID: 2, Start: 3, Duration: 2},
		{Idle: true, Start: 5, Duration: 3},
	}, 80)

	want := strings.Join([]string{
		"Gantt Chart:",
		"+------+----+------+",
		"|  P1  | P2 | Idle |",
		"+------+----+------+",
		"0      3    5      8",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteGantt_WrapsToWidth(t *testing.T) {
	var events []core.Event
	for i := 0; i < 12; i++ {
		events = append(events, core.Event{ProcessID: i%3 + 1, Start: i * 4, Duration: 4})
	}

	var buf bytes.Buffer
	WriteGantt(&buf, events, 30)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 5)
	assert.Equal(t, 0, (len(lines)-1)%4)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30, line)
	}
	// every band ends on the tick the next band starts from
	assert.True(t, strings.HasSuffix(lines[4], "12"), lines[4])
	assert.True(t, strings.HasPrefix(lines[8], "12"), lines[8])
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "48"))
}

func TestWriteGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, nil, 80)
	assert.Equal(t, "No Gantt chart to display.\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	resp := sampleResponse()
	resp.Details[1].StartTime = core.NullTick{}

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, resp))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "rr", decoded["policy"])
	assert.Equal(t, 2, decoded["time_quantum"])

	details := decoded["details"].([]interface{})
	require.Len(t, details, 2)
	assert.Equal(t, 0, details[0].(map[string]interface{})["start_time"])
	assert.Nil(t, details[1].(map[string]interface{})["start_time"])
	assert.Len(t, decoded["gantt"], 3)
}
