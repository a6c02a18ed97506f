package schedulers

import (
	"fmt"
	"testing"

	"cpu-scheduler-visualizer/internal/core"
)

func spec(id string, arrival, burst, priority int) core.ProcessSpec {
	return core.ProcessSpec{ProcessId: id, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
}

func seg(id string, start, end int) core.GanttSegment {
	return core.GanttSegment{ProcessId: id, StartTime: start, EndTime: end}
}

func assertGantt(t *testing.T, got, want []core.GanttSegment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d segments %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func findProcess(t *testing.T, result core.SimulationResult, id string) core.ProcessRunState {
	t.Helper()
	for _, p := range result.Processes {
		if p.ProcessId == id {
			return p
		}
	}
	t.Fatalf("process %s missing from result", id)
	return core.ProcessRunState{}
}

func assertTiming(t *testing.T, result core.SimulationResult, id string, start, completion, waiting, turnaround int) {
	t.Helper()
	p := findProcess(t, result, id)
	if p.StartTime != start || p.CompletionTime != completion || p.WaitingTime != waiting || p.TurnAroundTime != turnaround {
		t.Errorf("%s: expected start=%d completion=%d waiting=%d turnaround=%d, got start=%d completion=%d waiting=%d turnaround=%d",
			id, start, completion, waiting, turnaround,
			p.StartTime, p.CompletionTime, p.WaitingTime, p.TurnAroundTime)
	}
}

func averageWaiting(result core.SimulationResult) float64 {
	var sum int
	for _, p := range result.Processes {
		sum += p.WaitingTime
	}
	return float64(sum) / float64(len(result.Processes))
}

// assertInvariants checks the properties every valid schedule must hold.
// quantum 0 means the schedule is non-preemptive.
func assertInvariants(t *testing.T, specs []core.ProcessSpec, result core.SimulationResult, quantum int) {
	t.Helper()
	if len(result.Processes) != len(specs) {
		t.Fatalf("expected %d processes, got %d", len(specs), len(result.Processes))
	}
	if len(result.Gantt) == 0 {
		t.Fatal("expected a non-empty gantt")
	}

	byID := make(map[string]core.ProcessSpec, len(specs))
	minArrival := specs[0].ArrivalTime
	busy := 0
	for _, s := range specs {
		byID[s.ProcessId] = s
		busy += s.BurstTime
		if s.ArrivalTime < minArrival {
			minArrival = s.ArrivalTime
		}
	}

	if result.Gantt[0].StartTime != minArrival {
		t.Errorf("first segment starts at %d, expected earliest arrival %d", result.Gantt[0].StartTime, minArrival)
	}

	durations := make(map[string]int)
	counts := make(map[string]int)
	for i, s := range result.Gantt {
		if s.EndTime <= s.StartTime {
			t.Errorf("segment %d has no duration: %+v", i, s)
		}
		if i > 0 && s.StartTime < result.Gantt[i-1].EndTime {
			t.Errorf("segment %d overlaps previous: %+v after %+v", i, s, result.Gantt[i-1])
		}
		if s.StartTime < byID[s.ProcessId].ArrivalTime {
			t.Errorf("segment %d dispatches %s before arrival", i, s.ProcessId)
		}
		if quantum > 0 && s.Duration() > quantum {
			t.Errorf("segment %d exceeds quantum %d: %+v", i, quantum, s)
		}
		durations[s.ProcessId] += s.Duration()
		counts[s.ProcessId]++
	}

	for _, p := range result.Processes {
		original := byID[p.ProcessId]
		if p.ProcessSpec != original {
			t.Errorf("%s: spec changed from %+v to %+v", p.ProcessId, original, p.ProcessSpec)
		}
		if p.WaitingTime+p.BurstTime != p.TurnAroundTime {
			t.Errorf("%s: waiting %d + burst %d != turnaround %d", p.ProcessId, p.WaitingTime, p.BurstTime, p.TurnAroundTime)
		}
		if p.CompletionTime-p.ArrivalTime != p.TurnAroundTime {
			t.Errorf("%s: completion - arrival != turnaround", p.ProcessId)
		}
		if p.RemainingTime != 0 {
			t.Errorf("%s: remaining time %d", p.ProcessId, p.RemainingTime)
		}
		if durations[p.ProcessId] != p.BurstTime {
			t.Errorf("%s: segments sum to %d, burst is %d", p.ProcessId, durations[p.ProcessId], p.BurstTime)
		}
		if quantum == 0 && counts[p.ProcessId] != 1 {
			t.Errorf("%s: non-preemptive schedule has %d segments", p.ProcessId, counts[p.ProcessId])
		}
		if p.StartTime < p.ArrivalTime {
			t.Errorf("%s: started at %d before arrival %d", p.ProcessId, p.StartTime, p.ArrivalTime)
		}
	}

	if result.Metric.UtilizationTime != busy {
		t.Errorf("utilization %d, expected total burst %d", result.Metric.UtilizationTime, busy)
	}
	if result.Metric.TotalTime != result.Gantt[len(result.Gantt)-1].EndTime {
		t.Errorf("total time %d does not match last segment end", result.Metric.TotalTime)
	}
	if result.Metric.IdleTime != result.Metric.TotalTime-busy {
		t.Errorf("idle %d, expected %d", result.Metric.IdleTime, result.Metric.TotalTime-busy)
	}
}

func idList(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("P%d", i+1)
	}
	return ids
}
