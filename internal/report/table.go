package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// WriteTitle prints a banner for the policy that produced the results.
func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteTable prints one row per process followed by the averages.
func WriteTable(w io.Writer, response responses.ScheduleResponse) {
	if len(response.Details) == 0 {
		_, _ = fmt.Fprintln(w, "No processes to display.")
		return
	}

	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			fmt.Sprintf("P%d", d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			d.StartTime.String(),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Priority", "Start", "Completion", "Waiting", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "\nAverage Waiting Time: %.2f\n", response.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", response.AverageTurnAroundTime)
}

// WriteCPUSummary prints how busy the CPU was over the run.
func WriteCPUSummary(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CPU", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Total time", fmt.Sprint(response.TotalTime)},
		{"Idle time", fmt.Sprint(response.IdleTime)},
		{"Utilization", fmt.Sprintf("%.2f%%", response.CpuUtilization*100)},
		{"Throughput", fmt.Sprintf("%.2f/t", response.CpuThroughput)},
		{"Average response", fmt.Sprintf("%.2f", response.AverageResponseTime)},
		{"Context switches", fmt.Sprint(response.ContextSwitches)},
	})
	table.Render()
}

// WriteReport prints the title, the process table, the CPU summary and the Gantt
// chart wrapped to width columns.
func WriteReport(w io.Writer, response responses.ScheduleResponse, width int) {
	title := response.Title + " Scheduling Simulation Results"
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	WriteTitle(w, title)
	WriteTable(w, response)
	_, _ = fmt.Fprintln(w)
	WriteCPUSummary(w, response)
	_, _ = fmt.Fprintln(w)
	WriteGantt(w, response.Gantt, width)
}

// Render writes runs in the named format ("table" or "yaml").
func Render(w io.Writer, format string, width int, runs ...responses.ScheduleResponse) error {
	switch format {
	case "yaml":
		return WriteYAML(w, runs...)
	case "table", "":
		for i, r := range runs {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			WriteReport(w, r, width)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
