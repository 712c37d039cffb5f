package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin serves the ready queue in FIFO order, one quantum at a time.
// Processes that arrive while a slice runs are queued ahead of the process that was
// just preempted.
func ScheduleRoundRobin(processes []core.Process, opts Options) (*Result, error) {
	quantum := opts.Quantum
	if quantum <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidQuantum, quantum)
	}
	opts.logger().Debug("round robin time quantum", "quantum", quantum)

	return run(RoundRobin, processes, strategy{
		pick: pickHead,
		slice: func(p *core.Process) int {
			return min(quantum, p.RemainingTime)
		},
		rotate: true,
	}, opts), nil
}
