package schedulers

import "cpu-scheduler/internal/core"

// Lower priority value wins.

func higherPriority(a, b *core.Process) bool {
	return a.Priority < b.Priority
}

func higherPriorityThenArrival(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}

// SchedulePriority dispatches the highest-priority ready process and runs it to
// completion.
func SchedulePriority(processes []core.Process, opts Options) *Result {
	return run(PriorityNonPreemptive, processes, strategy{
		pick:  pickMin(higherPriorityThenArrival),
		slice: toCompletion,
	}, opts)
}

// SchedulePreemptivePriority checks priorities at every tick, so a higher-priority
// arrival takes the CPU at the next tick boundary.
func SchedulePreemptivePriority(processes []core.Process, opts Options) *Result {
	return run(PriorityPreemptive, processes, strategy{
		pick:  pickMin(higherPriority),
		slice: oneTick,
	}, opts)
}
