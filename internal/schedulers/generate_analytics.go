package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse turns a run into its wire form. It fails with
// util.ErrNoProcesses when the run had nothing to schedule.
func GenerateResponse(result *Result, quantum int) (responses.ScheduleResponse, error) {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime, err := util.CalculateAverage(result.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	cpuMetric := core.MeasureCPU(result.Timeline, len(result.Processes))
	response := responses.ScheduleResponse{
		Policy:                string(result.Policy),
		Title:                 result.Policy.Title(),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        cpuMetric.Utilization,
		CpuThroughput:         cpuMetric.Throughput,
		ContextSwitches:       cpuMetric.ContextSwitches,
		Details:               generateProcessDetails(result.Processes),
		Gantt:                 result.Timeline.Merged(),
	}
	if result.Policy.NeedsQuantum() {
		response.TimeQuantum = quantum
	}
	return response, nil
}

func generateProcessDetails(processes []core.Process) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(processes))
	for i, p := range processes {
		details[i] = responses.ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			WaitingTime:    p.WaitingTime,
			TurnAroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
		}
	}
	return details
}
