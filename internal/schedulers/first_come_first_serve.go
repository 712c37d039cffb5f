package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order. Equal
// arrivals keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process, opts Options) *Result {
	return run(FirstComeFirstServe, processes, strategy{
		pick:  pickHead,
		slice: toCompletion,
	}, opts)
}
