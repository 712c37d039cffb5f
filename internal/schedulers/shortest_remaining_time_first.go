package schedulers

import "cpu-scheduler/internal/core"

func lessRemaining(a, b *core.Process) bool {
	return a.RemainingTime < b.RemainingTime
}

// ScheduleShortestRemainingTimeFirst re-evaluates the ready set at every tick and
// runs whichever process has the least burst left, preempting the incumbent when a
// shorter one arrives.
func ScheduleShortestRemainingTimeFirst(processes []core.Process, opts Options) *Result {
	return run(ShortestRemainingTimeFirst, processes, strategy{
		pick:  pickMin(lessRemaining),
		slice: oneTick,
	}, opts)
}
