package core

// CpuMetric summarizes how the single simulated CPU was used during a run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	Utilization     float64
	Throughput      float64
	ContextSwitches int
}

// MeasureCPU derives the CPU metric of a timeline that completed processCount
// processes. Time before the first event counts as idle.
func MeasureCPU(t *Timeline, processCount int) CpuMetric {
	metric := CpuMetric{
		TotalTime:       t.End(),
		UtilizationTime: t.BusyTicks(),
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	if metric.TotalTime > 0 {
		metric.Utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		metric.Throughput = float64(processCount) / float64(metric.TotalTime)
	}

	// a switch is any hand-over between two different processes, idle gaps included
	last := -1
	for _, e := range t.Merged() {
		if e.Idle {
			continue
		}
		if last != -1 && last != e.ProcessID {
			metric.ContextSwitches++
		}
		last = e.ProcessID
	}
	return metric
}
