package schedulers

import (
	"fmt"

	"cpu-scheduler-visualizer/internal/core"
)

// ScheduleRoundRobin time-slices processes through a FIFO ready queue.
// Processes arriving during a slice are queued ahead of the preempted one.
func ScheduleRoundRobin(processes []core.ProcessSpec, timeQuantum int) (core.SimulationResult, error) {
	if timeQuantum <= 0 {
		return core.SimulationResult{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	jobs, err := sortedRunStates(processes)
	if err != nil {
		return core.SimulationResult{}, err
	}

	cpu := core.NewCpu()
	readyQueue := make([]*core.ProcessRunState, 0, len(jobs))
	next := 0 // index of the first job not yet queued

	admitArrivals := func() {
		for next < len(jobs) && jobs[next].ArrivalTime <= cpu.Now() {
			readyQueue = append(readyQueue, jobs[next])
			next++
		}
	}

	for next < len(jobs) || len(readyQueue) > 0 {
		admitArrivals()
		if len(readyQueue) == 0 {
			cpu.IdleUntil(jobs[next].ArrivalTime)
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]
		cpu.Execute(current, timeQuantum)

		admitArrivals()
		if !current.Completed() {
			readyQueue = append(readyQueue, current)
		}
	}
	return cpu.Result(jobs), nil
}
