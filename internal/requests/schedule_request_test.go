package requests

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name  string
		job   Job
		field string
	}{
		{"valid", Job{ArrivalTime: 0, BurstTime: 1}, ""},
		{"negative arrival", Job{ArrivalTime: -1, BurstTime: 1}, "arrival_time"},
		{"zero burst", Job{ArrivalTime: 0, BurstTime: 0}, "burst_time"},
		{"negative burst", Job{ArrivalTime: 2, BurstTime: -4}, "burst_time"},
		{"negative priority allowed", Job{BurstTime: 1, Priority: -3}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			assertField(t, err, tt.field)
		})
	}
}

func TestJobsToSpecs_AssignsIDs(t *testing.T) {
	specs, err := JobsToSpecs([]Job{
		{ArrivalTime: 0, BurstTime: 5},
		{ProcessId: "worker", ArrivalTime: 1, BurstTime: 3, Priority: 2},
		{ArrivalTime: 2, BurstTime: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"P1", "worker", "P3"}
	for i, s := range specs {
		if s.ProcessId != want[i] {
			t.Errorf("spec %d: expected id %s, got %s", i, want[i], s.ProcessId)
		}
	}
	if specs[1].Priority != 2 || specs[1].BurstTime != 3 {
		t.Errorf("fields not copied: %+v", specs[1])
	}
}

func TestJobsToSpecs_SkipsTakenIDs(t *testing.T) {
	specs, err := JobsToSpecs([]Job{
		{ProcessId: "P2", BurstTime: 1},
		{BurstTime: 2},
		{BurstTime: 3},
		{ProcessId: "P3", BurstTime: 4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"P2", "P4", "P5", "P3"}
	for i, s := range specs {
		if s.ProcessId != want[i] {
			t.Errorf("spec %d: expected id %s, got %s", i, want[i], s.ProcessId)
		}
	}
}

func TestJobsToSpecs_Errors(t *testing.T) {
	_, err := JobsToSpecs([]Job{{ProcessId: "A", BurstTime: 1}, {ProcessId: " A ", BurstTime: 2}})
	assertField(t, err, "process_id")

	_, err = JobsToSpecs([]Job{{BurstTime: 1}, {BurstTime: 0}})
	assertField(t, err, "burst_time")

	specs, err := ScheduleRequests{}.Specs()
	if err != nil || len(specs) != 0 {
		t.Errorf("empty request should convert to no specs, got %v, %v", specs, err)
	}
}

func TestJobsToSpecs_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing arrival", `{"processes":[{"burst_time":3,"priority":0}]}`, "arrival_time"},
		{"missing burst", `{"processes":[{"arrival_time":0,"priority":0}]}`, "burst_time"},
		{"missing priority", `{"processes":[{"arrival_time":0,"burst_time":3}]}`, "priority"},
		{"null process", `{"processes":[null]}`, "arrival_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ScheduleRequests
			assertField(t, json.Unmarshal([]byte(tt.body), &req), tt.field)
		})
	}

	var req ScheduleRequests
	if err := json.Unmarshal([]byte(`{"processes":[{"process_id":"A","arrival_time":0,"burst_time":3,"priority":0}]}`), &req); err != nil {
		t.Fatalf("explicit zeros should decode: %v", err)
	}
	specs, err := req.Specs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if specs[0].ProcessId != "A" || specs[0].ArrivalTime != 0 || specs[0].BurstTime != 3 {
		t.Errorf("unexpected spec: %+v", specs[0])
	}
}

func TestJob_UnmarshalYAMLRequiresFields(t *testing.T) {
	var jobs []Job
	assertField(t, yaml.Unmarshal([]byte("- burst: 3\n  priority: 1\n"), &jobs), "arrival")
	assertField(t, yaml.Unmarshal([]byte("- arrival: 0\n  burst: 3\n"), &jobs), "priority")

	if err := yaml.Unmarshal([]byte("- id: io\n  arrival: 0\n  burst: 3\n  priority: 0\n"), &jobs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs[0] != (Job{ProcessId: "io", BurstTime: 3}) {
		t.Errorf("unexpected job: %+v", jobs[0])
	}
}

func TestResolveQuantum(t *testing.T) {
	if q, err := ResolveQuantum(nil, 4); err != nil || q != 4 {
		t.Errorf("expected fallback 4, got %d, %v", q, err)
	}
	three := 3
	if q, err := ResolveQuantum(&three, 4); err != nil || q != 3 {
		t.Errorf("expected 3, got %d, %v", q, err)
	}
	zero := 0
	_, err := ResolveQuantum(&zero, 4)
	assertField(t, err, "time_quantum")
}

func TestValidateQuantum(t *testing.T) {
	if err := ValidateQuantum(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	assertField(t, ValidateQuantum(0), "time_quantum")
}

func TestParseJob(t *testing.T) {
	job, err := ParseJob("3, 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ArrivalTime != 3 || job.BurstTime != 5 || job.Priority != 0 {
		t.Errorf("unexpected job: %+v", job)
	}

	job, err = ParseJob("0,2,-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Priority != -1 {
		t.Errorf("expected priority -1, got %d", job.Priority)
	}

	tests := map[string]string{
		"5":       "process",
		"1,2,3,4": "process",
		"x,2":     "arrival_time",
		"1,":      "burst_time",
		"1,0":     "burst_time",
		"1,2,hi":  "priority",
		"-1,2":    "arrival_time",
	}
	for in, field := range tests {
		_, err := ParseJob(in)
		if err == nil {
			t.Errorf("ParseJob(%q): expected error", in)
			continue
		}
		assertField(t, err, field)
	}
}

func assertField(t *testing.T, err error, field string) {
	t.Helper()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != field {
		t.Errorf("expected field %s, got %s", field, verr.Field)
	}
}
