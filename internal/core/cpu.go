package core

import "sort"

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core driven by a discrete clock starting at 0.
// Idle periods advance the clock without producing gantt segments.
type Cpu struct {
	clock    int
	segments []GanttSegment
	metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{segments: make([]GanttSegment, 0)}
}

func (c *Cpu) Now() int {
	return c.clock
}

// IdleUntil jumps the clock forward to t. Earlier times are ignored.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs the process for at most slice time units and returns the time
// actually used. The process is finalized when its remaining time reaches 0.
func (c *Cpu) Execute(process *ProcessRunState, slice int) int {
	if slice > process.RemainingTime {
		slice = process.RemainingTime
	}
	if slice <= 0 {
		return 0
	}
	if process.StartTime == Unset {
		process.StartTime = c.clock
	}

	start := c.clock
	c.clock += slice
	process.RemainingTime -= slice
	c.metric.UtilizationTime += slice
	c.segments = append(c.segments, GanttSegment{
		ProcessId: process.ProcessId,
		StartTime: start,
		EndTime:   c.clock,
	})

	if process.RemainingTime == 0 {
		process.finish(c.clock)
	}
	return slice
}

// RunToCompletion executes the remaining burst in one segment.
func (c *Cpu) RunToCompletion(process *ProcessRunState) {
	c.Execute(process, process.RemainingTime)
}

func (c *Cpu) Segments() []GanttSegment {
	out := make([]GanttSegment, len(c.segments))
	copy(out, c.segments)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	metric := c.metric
	metric.TotalTime = c.clock
	return metric
}

// Result snapshots the run: processes ordered by (arrival, id), segments in
// dispatch order and the cpu metric.
func (c *Cpu) Result(states []*ProcessRunState) SimulationResult {
	processes := make([]ProcessRunState, 0, len(states))
	for _, state := range states {
		processes = append(processes, *state)
	}
	sort.SliceStable(processes, func(i, j int) bool {
		return Less(processes[i].ProcessSpec, processes[j].ProcessSpec)
	})

	return SimulationResult{
		Processes: processes,
		Gantt:     c.Segments(),
		Metric:    c.Metric(),
	}
}
