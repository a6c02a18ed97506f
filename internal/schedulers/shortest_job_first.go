package schedulers

import "cpu-scheduler-visualizer/internal/core"

// ScheduleShortestJobFirst is non-preemptive SJF keyed on burst time.
func ScheduleShortestJobFirst(processes []core.ProcessSpec) (core.SimulationResult, error) {
	return scheduleNonPreemptive(processes, func(p *core.ProcessRunState) int {
		return p.BurstTime
	})
}
