package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess_StartsUnset(t *testing.T) {
	p := NewProcess(1, 3, 5, 2)

	assert.False(t, p.StartTime.Valid)
	assert.Equal(t, 5, p.RemainingTime)
	assert.Equal(t, 0, p.CompletionTime)
	assert.Equal(t, "P1", p.Label())
}

func TestProcess_DispatchAtTickZero(t *testing.T) {
	p := NewProcess(1, 0, 4, 0)
	p.Dispatch(0)

	require.True(t, p.StartTime.Valid)
	assert.Equal(t, 0, p.StartTime.Tick)

	// a later dispatch of a started process keeps the first tick
	p.Dispatch(7)
	assert.Equal(t, 0, p.StartTime.Tick)
}

func TestProcess_ExecuteAndComplete(t *testing.T) {
	p := NewProcess(2, 1, 3, 0)
	p.Dispatch(2)

	assert.Equal(t, 2, p.Execute(2))
	assert.False(t, p.Done())
	assert.Equal(t, 1, p.Execute(5))
	assert.True(t, p.Done())

	p.Complete(6)
	assert.Equal(t, 6, p.CompletionTime)
	assert.Equal(t, 5, p.TurnaroundTime)
	assert.Equal(t, 2, p.WaitingTime)
	assert.Equal(t, 1, p.ResponseTime)
}

func TestProcess_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Process
		wantErr bool
	}{
		{name: "valid", p: Process{ArrivalTime: 0, BurstTime: 1, Priority: 0}},
		{name: "negative arrival", p: Process{ArrivalTime: -1, BurstTime: 1}, wantErr: true},
		{name: "zero burst", p: Process{BurstTime: 0}, wantErr: true},
		{name: "negative priority", p: Process{BurstTime: 2, Priority: -3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClone_ResetsCopiesOnly(t *testing.T) {
	original := []Process{NewProcess(1, 0, 3, 0)}
	original[0].Dispatch(0)
	original[0].Execute(3)
	original[0].Complete(3)

	clones := Clone(original)

	assert.False(t, clones[0].StartTime.Valid)
	assert.Equal(t, 3, clones[0].RemainingTime)
	assert.True(t, original[0].StartTime.Valid)
	assert.Equal(t, 0, original[0].RemainingTime)
}

func TestNullTick_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Unset NullTick `json:"unset"`
		Zero  NullTick `json:"zero"`
	}{Zero: TickOf(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"unset":null,"zero":0}`, string(data))

	var n NullTick
	require.NoError(t, json.Unmarshal([]byte("4"), &n))
	assert.Equal(t, TickOf(4), n)
	require.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.False(t, n.Valid)
	assert.Equal(t, "-", n.String())
}
