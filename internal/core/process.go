package core

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NullTick is a simulation tick that may be unset, in the manner of sql.NullInt64.
type NullTick struct {
	Tick  int
	Valid bool
}

// TickOf returns a set NullTick.
func TickOf(t int) NullTick {
	return NullTick{Tick: t, Valid: true}
}

func (n NullTick) String() string {
	if !n.Valid {
		return "-"
	}
	return strconv.Itoa(n.Tick)
}

func (n NullTick) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Tick)
}

func (n NullTick) MarshalYAML() (interface{}, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Tick, nil
}

func (n *NullTick) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullTick{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Tick); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Process is one schedulable unit of work. ArrivalTime, BurstTime and Priority are
// inputs; the remaining fields are written by a policy run.
type Process struct {
	ID          int `json:"id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`

	StartTime      NullTick `json:"start_time"`
	CompletionTime int      `json:"completion_time"`
	TurnaroundTime int      `json:"turnaround_time"`
	WaitingTime    int      `json:"waiting_time"`
	ResponseTime   int      `json:"response_time"`
	RemainingTime  int      `json:"remaining_time"`
}

// NewProcess returns a process with its simulation fields at their unset defaults.
func NewProcess(id, arrival, burst, priority int) Process {
	p := Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
	p.Reset()
	return p
}

// Label is the display name of the process.
func (p *Process) Label() string {
	return fmt.Sprintf("P%d", p.ID)
}

// Validate checks the input attributes.
func (p *Process) Validate() error {
	switch {
	case p.ArrivalTime < 0:
		return fmt.Errorf("arrival time must be non-negative, got %d", p.ArrivalTime)
	case p.BurstTime <= 0:
		return fmt.Errorf("burst time must be positive, got %d", p.BurstTime)
	case p.Priority < 0:
		return fmt.Errorf("priority must be non-negative, got %d", p.Priority)
	}
	return nil
}

// Reset clears every simulation output so the record can go through a new run.
func (p *Process) Reset() {
	p.StartTime = NullTick{}
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
	p.ResponseTime = 0
	p.RemainingTime = p.BurstTime
}

// Dispatch records the first allocation of the CPU to the process.
func (p *Process) Dispatch(now int) {
	if p.StartTime.Valid {
		return
	}
	p.StartTime = TickOf(now)
	p.ResponseTime = now - p.ArrivalTime
}

// Execute consumes up to ticks of remaining burst and returns how many were used.
func (p *Process) Execute(ticks int) int {
	if ticks > p.RemainingTime {
		ticks = p.RemainingTime
	}
	p.RemainingTime -= ticks
	return ticks
}

// Done reports whether the process has no burst left.
func (p *Process) Done() bool {
	return p.RemainingTime == 0
}

// Complete finalizes the derived times at tick now.
func (p *Process) Complete(now int) {
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// Clone copies processes and resets the copies for a fresh run.
func Clone(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	for i := range out {
		out[i].Reset()
	}
	return out
}
