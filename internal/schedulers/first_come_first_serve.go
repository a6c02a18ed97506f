package schedulers

import "cpu-scheduler-visualizer/internal/core"

// ScheduleFirstComeFirstServe runs every process to completion in (arrival, id) order.
func ScheduleFirstComeFirstServe(processes []core.ProcessSpec) (core.SimulationResult, error) {
	jobs, err := sortedRunStates(processes)
	if err != nil {
		return core.SimulationResult{}, err
	}

	cpu := core.NewCpu()
	for _, job := range jobs {
		cpu.IdleUntil(job.ArrivalTime)
		cpu.RunToCompletion(job)
	}
	return cpu.Result(jobs), nil
}
