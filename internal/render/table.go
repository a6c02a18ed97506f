package render

import (
	"fmt"
	"io"
	"strconv"

	"cpu-scheduler-visualizer/internal/responses"
	"cpu-scheduler-visualizer/internal/schedulers"
	"github.com/olekukonko/tablewriter"
)

// Report prints the title, gantt chart, metrics table and averages of one run.
func Report(w io.Writer, resp responses.ScheduleResponse, ganttWidth int) error {
	title := resp.Algorithm
	if algorithm, err := schedulers.ParseAlgorithm(resp.Algorithm); err == nil {
		title = algorithm.Title()
	}
	if resp.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, resp.TimeQuantum)
	}

	bold.Fprintln(w, title)
	fmt.Fprintln(w)
	if err := Gantt(w, resp.Gantt, ganttWidth); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := ProcessTable(w, resp); err != nil {
		return err
	}
	return Summary(w, resp)
}

func ProcessTable(w io.Writer, resp responses.ScheduleResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header("Process", "Arrival", "Burst", "Priority", "Start", "Completion", "Waiting", "Turnaround", "Response")

	for _, d := range resp.Details {
		if err := table.Append(
			d.ProcessId,
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.StartTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.ResponseTime),
		); err != nil {
			return fmt.Errorf("append row %s: %w", d.ProcessId, err)
		}
	}
	return table.Render()
}

func Summary(w io.Writer, resp responses.ScheduleResponse) error {
	_, err := fmt.Fprintf(w,
		"Average waiting time: %.2f\nAverage turnaround time: %.2f\nAverage response time: %.2f\n"+
			"Total time: %d  Idle time: %d  CPU utilization: %.2f%%  Throughput: %.2f/unit\n",
		resp.AverageWaitingTime, resp.AverageTurnAroundTime, resp.AverageResponseTime,
		resp.TotalTime, resp.IdleTime, resp.CpuUtilization*100, resp.CpuThroughput)
	return err
}

// Comparison prints one row per algorithm.
func Comparison(w io.Writer, compare responses.CompareResponse) error {
	bold.Fprintln(w, "Algorithm comparison")
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.Header("Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "Total Time", "Utilization", "Throughput")
	for _, r := range compare.Results {
		if err := table.Append(
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			strconv.Itoa(r.TotalTime),
			fmt.Sprintf("%.2f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f", r.CpuThroughput),
		); err != nil {
			return fmt.Errorf("append row %s: %w", r.Algorithm, err)
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Lowest average waiting time: %s\n", compare.LowestAverageWaiting)
	return err
}
