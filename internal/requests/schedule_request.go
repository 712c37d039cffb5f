package requests

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

type Job struct {
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequest struct {
	Processes   []Job `json:"processes" yaml:"processes"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// NewScheduleRequest builds a request from loaded processes.
func NewScheduleRequest(processes []core.Process, quantum int) ScheduleRequest {
	jobs := make([]Job, len(processes))
	for i, p := range processes {
		jobs[i] = Job{ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime, Priority: p.Priority}
	}
	return ScheduleRequest{Processes: jobs, TimeQuantum: quantum}
}

// ToProcesses validates the jobs and numbers them from 1 in request order.
func (r ScheduleRequest) ToProcesses() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Processes))
	for i, job := range r.Processes {
		p := core.NewProcess(i+1, job.ArrivalTime, job.BurstTime, job.Priority)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("process %d: %w", i+1, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}
