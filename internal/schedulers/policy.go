package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrUnknownPolicy  = errors.New("unknown scheduling policy")
	ErrInvalidQuantum = errors.New("time quantum must be a positive integer")
)

// Policy names a scheduling algorithm.
type Policy string

const (
	FirstComeFirstServe        Policy = "fcfs"
	PriorityNonPreemptive      Policy = "priority"
	PriorityPreemptive         Policy = "priority-preemptive"
	ShortestRemainingTimeFirst Policy = "srtf"
	RoundRobin                 Policy = "rr"
	ShortestJobFirst           Policy = "sjf"
)

// Policies lists every policy in menu order.
func Policies() []Policy {
	return []Policy{
		FirstComeFirstServe,
		PriorityNonPreemptive,
		PriorityPreemptive,
		ShortestRemainingTimeFirst,
		RoundRobin,
		ShortestJobFirst,
	}
}

// ParsePolicy accepts a policy name, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Policies() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Title is the human-readable name of the policy.
func (p Policy) Title() string {
	switch p {
	case FirstComeFirstServe:
		return "First Come First Serve"
	case PriorityNonPreemptive:
		return "Priority Non-Preemptive"
	case PriorityPreemptive:
		return "Priority Preemptive"
	case ShortestRemainingTimeFirst:
		return "Shortest Remaining Time First"
	case RoundRobin:
		return "Round Robin"
	case ShortestJobFirst:
		return "Shortest Job First"
	}
	return string(p)
}

// NeedsQuantum reports whether the policy takes a time quantum.
func (p Policy) NeedsQuantum() bool {
	return p == RoundRobin
}

// Run simulates the policy over a copy of processes; the caller's records are
// left untouched.
func Run(policy Policy, processes []core.Process, opts Options) (*Result, error) {
	switch policy {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes, opts), nil
	case PriorityNonPreemptive:
		return SchedulePriority(processes, opts), nil
	case PriorityPreemptive:
		return SchedulePreemptivePriority(processes, opts), nil
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes, opts), nil
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes, opts), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
}
