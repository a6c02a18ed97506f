package core

// Unset marks a start or completion time that has not been reached yet.
const Unset = -1

// ProcessSpec is a process as entered by the user. The simulation never mutates it.
type ProcessSpec struct {
	ProcessId   string
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value runs first
}

// ProcessRunState is the per-run working copy of a ProcessSpec.
type ProcessRunState struct {
	ProcessSpec
	RemainingTime  int
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnAroundTime int
}

func NewProcessRunState(spec ProcessSpec) *ProcessRunState {
	return &ProcessRunState{
		ProcessSpec:    spec,
		RemainingTime:  spec.BurstTime,
		StartTime:      Unset,
		CompletionTime: Unset,
	}
}

func (p *ProcessRunState) Completed() bool {
	return p.CompletionTime != Unset
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *ProcessRunState) ResponseTime() int {
	if p.StartTime == Unset {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}

func (p *ProcessRunState) finish(clock int) {
	p.CompletionTime = clock
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.BurstTime
}

type GanttSegment struct {
	ProcessId string
	StartTime int
	EndTime   int
}

func (s GanttSegment) Duration() int {
	return s.EndTime - s.StartTime
}

type SimulationResult struct {
	Processes []ProcessRunState
	Gantt     []GanttSegment
	Metric    CpuMetric
}

// CopyRunStates builds a fresh run state for every spec, leaving specs untouched.
func CopyRunStates(specs []ProcessSpec) []*ProcessRunState {
	states := make([]*ProcessRunState, 0, len(specs))
	for _, spec := range specs {
		states = append(states, NewProcessRunState(spec))
	}
	return states
}

// Less orders by arrival time, then by id.
func Less(a, b ProcessSpec) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessId < b.ProcessId
}
