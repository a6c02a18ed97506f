package schedulers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cpu-scheduler-visualizer/internal/core"
)

var (
	ErrEmptyRoster      = errors.New("no processes to schedule")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
	ErrInvalidBurst     = errors.New("burst time must be positive")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
)

// Algorithms lists every policy in the order results are reported.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}

func (a Algorithm) String() string {
	return string(a)
}

// Title is the human readable policy name.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-Come-First-Served"
	case ShortestJobFirst:
		return "Shortest-Job-First"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "Round-Robin"
	}
	return string(a)
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "fifo":
		return FirstComeFirstServe, nil
	case "sjf":
		return ShortestJobFirst, nil
	case "priority", "prio":
		return Priority, nil
	case "rr", "round_robin", "round-robin", "roundrobin":
		return RoundRobin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Schedule runs one policy. The quantum is only used by round robin.
func Schedule(algorithm Algorithm, processes []core.ProcessSpec, timeQuantum int) (core.SimulationResult, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case Priority:
		return SchedulePriority(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum)
	}
	return core.SimulationResult{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
}

// sortedRunStates copies the specs and orders the copies by (arrival, id).
// A process that never needs the cpu could not be completed, so it is rejected.
func sortedRunStates(processes []core.ProcessSpec) ([]*core.ProcessRunState, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyRoster
	}
	for _, p := range processes {
		if p.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: %s has burst %d", ErrInvalidBurst, p.ProcessId, p.BurstTime)
		}
	}
	states := core.CopyRunStates(processes)
	sort.SliceStable(states, func(i, j int) bool {
		return core.Less(states[i].ProcessSpec, states[j].ProcessSpec)
	})
	return states, nil
}
