package util

import (
	"errors"

	"cpu-scheduler/internal/core"
)

// ErrNoProcesses is returned when averages are requested for an empty process set.
var ErrNoProcesses = errors.New("averages undefined: no processes")

func CalculateAverage(processes []core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, err error) {
	if len(processes) == 0 {
		return 0, 0, 0, ErrNoProcesses
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, p := range processes {
		waitingTimeSum += p.WaitingTime
		responseTimeSum += p.ResponseTime
		turnAroundTimeSum += p.TurnaroundTime
	}

	processCount := float64(len(processes))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}
