package schedulers

import "cpu-scheduler-visualizer/internal/core"

// selectionKey returns the primary ordering key of a ready process; lower runs first.
type selectionKey func(p *core.ProcessRunState) int

// scheduleNonPreemptive is the shared loop of SJF and Priority. At every
// dispatch point it picks the ready process with the lowest key, ties broken
// by (arrival, id), and runs it to completion. When nothing is ready the clock
// jumps to the earliest pending arrival.
func scheduleNonPreemptive(processes []core.ProcessSpec, key selectionKey) (core.SimulationResult, error) {
	jobs, err := sortedRunStates(processes)
	if err != nil {
		return core.SimulationResult{}, err
	}

	cpu := core.NewCpu()
	for completed := 0; completed < len(jobs); completed++ {
		next := pickReady(jobs, cpu.Now(), key)
		if next == nil {
			// jobs are in arrival order, so the first pending one arrives first
			for _, job := range jobs {
				if !job.Completed() {
					cpu.IdleUntil(job.ArrivalTime)
					break
				}
			}
			next = pickReady(jobs, cpu.Now(), key)
		}
		cpu.RunToCompletion(next)
	}
	return cpu.Result(jobs), nil
}

// pickReady returns the best arrived, unfinished process or nil. jobs must be
// sorted by (arrival, id) so the first minimum found wins ties.
func pickReady(jobs []*core.ProcessRunState, now int, key selectionKey) *core.ProcessRunState {
	var best *core.ProcessRunState
	for _, job := range jobs {
		if job.Completed() || job.ArrivalTime > now {
			continue
		}
		if best == nil || key(job) < key(best) {
			best = job
		}
	}
	return best
}
