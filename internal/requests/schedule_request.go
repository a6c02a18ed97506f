package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cpu-scheduler-visualizer/internal/core"
	"gopkg.in/yaml.v3"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a rejected input field. It matches ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Job is one process as submitted by a user. ProcessId may be left empty.
type Job struct {
	ProcessId   string `json:"process_id,omitempty" yaml:"id,omitempty"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival"`
	BurstTime   int    `json:"burst_time" yaml:"burst"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// jobFields mirrors Job with pointers so an absent value is told apart from 0.
type jobFields struct {
	ProcessId   string `json:"process_id" yaml:"id"`
	ArrivalTime *int   `json:"arrival_time" yaml:"arrival"`
	BurstTime   *int   `json:"burst_time" yaml:"burst"`
	Priority    *int   `json:"priority" yaml:"priority"`
}

var (
	jsonFieldNames = [3]string{"arrival_time", "burst_time", "priority"}
	yamlFieldNames = [3]string{"arrival", "burst", "priority"}
)

func (f jobFields) job(names [3]string) (Job, error) {
	values := [3]*int{f.ArrivalTime, f.BurstTime, f.Priority}
	for i, v := range values {
		if v == nil {
			return Job{}, invalid(names[i], "value is required")
		}
	}
	return Job{
		ProcessId:   f.ProcessId,
		ArrivalTime: *f.ArrivalTime,
		BurstTime:   *f.BurstTime,
		Priority:    *f.Priority,
	}, nil
}

// UnmarshalJSON rejects objects that leave out arrival_time, burst_time or priority.
func (j *Job) UnmarshalJSON(data []byte) error {
	var f jobFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	job, err := f.job(jsonFieldNames)
	if err != nil {
		return err
	}
	*j = job
	return nil
}

func (j *Job) UnmarshalYAML(value *yaml.Node) error {
	var f jobFields
	if err := value.Decode(&f); err != nil {
		return err
	}
	job, err := f.job(yamlFieldNames)
	if err != nil {
		return err
	}
	*j = job
	return nil
}

func (j Job) Validate() error {
	if j.ArrivalTime < 0 {
		return invalid("arrival_time", "must be >= 0, got %d", j.ArrivalTime)
	}
	if j.BurstTime <= 0 {
		return invalid("burst_time", "must be > 0, got %d", j.BurstTime)
	}
	return nil
}

// ScheduleRequests is a simulation request body. A nil TimeQuantum means the
// configured default applies.
type ScheduleRequests struct {
	Algorithm   string `json:"algorithm,omitempty"`
	TimeQuantum *int   `json:"time_quantum,omitempty"`
	Jobs        []Job  `json:"processes"`
}

// Specs validates every job and converts them to process specs. Jobs without
// an id are named P<position>, counting from 1; a position whose name is
// already taken by an explicit id moves on to the next free P<n>.
func (r ScheduleRequests) Specs() ([]core.ProcessSpec, error) {
	return JobsToSpecs(r.Jobs)
}

func JobsToSpecs(jobs []Job) ([]core.ProcessSpec, error) {
	taken := make(map[string]bool, len(jobs))
	for i, job := range jobs {
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("process %d: %w", i+1, err)
		}
		id := strings.TrimSpace(job.ProcessId)
		if id == "" {
			continue
		}
		if taken[id] {
			return nil, invalid("process_id", "duplicate id %q", id)
		}
		taken[id] = true
	}

	specs := make([]core.ProcessSpec, 0, len(jobs))
	for i, job := range jobs {
		id := strings.TrimSpace(job.ProcessId)
		if id == "" {
			id = nextFreeID(taken, i+1)
			taken[id] = true
		}
		specs = append(specs, core.ProcessSpec{
			ProcessId:   id,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return specs, nil
}

func nextFreeID(taken map[string]bool, n int) string {
	for {
		id := "P" + strconv.Itoa(n)
		if !taken[id] {
			return id
		}
		n++
	}
}

// ValidateQuantum rejects non-positive round robin quanta.
func ValidateQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return invalid("time_quantum", "must be > 0, got %d", timeQuantum)
	}
	return nil
}

// ResolveQuantum falls back when no quantum was given. An explicit quantum is
// always validated, so 0 is rejected rather than replaced.
func ResolveQuantum(requested *int, fallback int) (int, error) {
	if requested == nil {
		return fallback, nil
	}
	if err := ValidateQuantum(*requested); err != nil {
		return 0, err
	}
	return *requested, nil
}

// ParseInt parses a numeric form field, reporting missing and non-numeric values.
func ParseInt(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, invalid(field, "value is required")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalid(field, "%q is not a number", value)
	}
	return n, nil
}

// ParseJob parses "arrival,burst[,priority]". Priority defaults to 0.
func ParseJob(s string) (Job, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Job{}, invalid("process", "expected arrival,burst[,priority], got %q", s)
	}

	var job Job
	var err error
	if job.ArrivalTime, err = ParseInt("arrival_time", parts[0]); err != nil {
		return Job{}, err
	}
	if job.BurstTime, err = ParseInt("burst_time", parts[1]); err != nil {
		return Job{}, err
	}
	if len(parts) == 3 {
		if job.Priority, err = ParseInt("priority", parts[2]); err != nil {
			return Job{}, err
		}
	}
	return job, job.Validate()
}
