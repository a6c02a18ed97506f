// Package roster manages the user's editable list of processes.
//
// A Roster is owned by its caller. It is not safe for concurrent use.
package roster

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"cpu-scheduler-visualizer/internal/core"
	"cpu-scheduler-visualizer/internal/requests"
)

var ErrProcessNotFound = errors.New("process not found")

// Fields are the user-editable attributes of a process.
type Fields struct {
	ArrivalTime int
	BurstTime   int
	Priority    int
}

func (f Fields) validate() error {
	return requests.Job{ArrivalTime: f.ArrivalTime, BurstTime: f.BurstTime, Priority: f.Priority}.Validate()
}

type Roster struct {
	processes []core.ProcessSpec
	nextID    int
}

func New() *Roster {
	return &Roster{nextID: 1}
}

// Add validates the fields and stores a new process named P<n>.
func (r *Roster) Add(fields Fields) (core.ProcessSpec, error) {
	if err := fields.validate(); err != nil {
		return core.ProcessSpec{}, err
	}
	p := core.ProcessSpec{
		ProcessId:   "P" + strconv.Itoa(r.nextID),
		ArrivalTime: fields.ArrivalTime,
		BurstTime:   fields.BurstTime,
		Priority:    fields.Priority,
	}
	r.nextID++
	r.processes = append(r.processes, p)
	r.sort()
	return p, nil
}

// Update replaces the fields of an existing process. The roster is unchanged on error.
func (r *Roster) Update(id string, fields Fields) (core.ProcessSpec, error) {
	i := r.index(id)
	if i < 0 {
		return core.ProcessSpec{}, fmt.Errorf("%w: %s", ErrProcessNotFound, id)
	}
	if err := fields.validate(); err != nil {
		return core.ProcessSpec{}, err
	}
	r.processes[i].ArrivalTime = fields.ArrivalTime
	r.processes[i].BurstTime = fields.BurstTime
	r.processes[i].Priority = fields.Priority
	updated := r.processes[i]
	r.sort()
	return updated, nil
}

func (r *Roster) Delete(id string) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProcessNotFound, id)
	}
	r.processes = append(r.processes[:i], r.processes[i+1:]...)
	return nil
}

// Clear removes every process and restarts numbering at P1.
func (r *Roster) Clear() {
	r.processes = nil
	r.nextID = 1
}

func (r *Roster) Get(id string) (core.ProcessSpec, error) {
	i := r.index(id)
	if i < 0 {
		return core.ProcessSpec{}, fmt.Errorf("%w: %s", ErrProcessNotFound, id)
	}
	return r.processes[i], nil
}

// List returns a copy of the roster ordered by (arrival, id).
func (r *Roster) List() []core.ProcessSpec {
	out := make([]core.ProcessSpec, len(r.processes))
	copy(out, r.processes)
	return out
}

func (r *Roster) Len() int {
	return len(r.processes)
}

func (r *Roster) index(id string) int {
	for i, p := range r.processes {
		if p.ProcessId == id {
			return i
		}
	}
	return -1
}

func (r *Roster) sort() {
	sort.SliceStable(r.processes, func(i, j int) bool {
		return core.Less(r.processes[i], r.processes[j])
	})
}
