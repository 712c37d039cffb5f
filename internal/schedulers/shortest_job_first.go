package schedulers

import "cpu-scheduler/internal/core"

func shorterJob(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return a.ArrivalTime < b.ArrivalTime
}

// ScheduleShortestJobFirst is non-preemptive: whenever the CPU frees up, the ready
// process with the smallest burst runs to completion.
func ScheduleShortestJobFirst(processes []core.Process, opts Options) *Result {
	return run(ShortestJobFirst, processes, strategy{
		pick:  pickMin(shorterJob),
		slice: toCompletion,
	}, opts)
}
