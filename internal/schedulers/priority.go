package schedulers

import "cpu-scheduler-visualizer/internal/core"

// SchedulePriority is non-preemptive priority scheduling; the lowest value wins.
func SchedulePriority(processes []core.ProcessSpec) (core.SimulationResult, error) {
	return scheduleNonPreemptive(processes, func(p *core.ProcessRunState) int {
		return p.Priority
	})
}
