package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int           `json:"process_id" yaml:"process_id"`
	ArrivalTime    int           `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int           `json:"burst_time" yaml:"burst_time"`
	Priority       int           `json:"priority" yaml:"priority"`
	StartTime      core.NullTick `json:"start_time" yaml:"start_time"`
	CompletionTime int           `json:"completion_time" yaml:"completion_time"`
	WaitingTime    int           `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int           `json:"turn_around_time" yaml:"turn_around_time"`
	ResponseTime   int           `json:"response_time" yaml:"response_time"`
}

type ScheduleResponse struct {
	Policy                string            `json:"policy" yaml:"policy"`
	Title                 string            `json:"title" yaml:"title"`
	TimeQuantum           int               `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches" yaml:"context_switches"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
	Gantt                 []core.Event      `json:"gantt" yaml:"gantt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
