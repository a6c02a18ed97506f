package util

import (
	"testing"

	"cpu-scheduler-visualizer/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{ProcessId: "P1", WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{ProcessId: "P2", WaitingTime: 4, ResponseTime: 1, TurnAroundTime: 7},
	}

	wt, rt, tat := CalculateAverage(details)
	if wt != 2 {
		t.Errorf("expected average waiting 2, got %v", wt)
	}
	if rt != 0.5 {
		t.Errorf("expected average response 0.5, got %v", rt)
	}
	if tat != 6 {
		t.Errorf("expected average turnaround 6, got %v", tat)
	}
}

func TestCalculateAverage_Empty(t *testing.T) {
	wt, rt, tat := CalculateAverage(nil)
	if wt != 0 || rt != 0 || tat != 0 {
		t.Errorf("expected zero averages, got %v %v %v", wt, rt, tat)
	}
}

func TestRatio(t *testing.T) {
	if r := Ratio(3, 4); r != 0.75 {
		t.Errorf("expected 0.75, got %v", r)
	}
	if r := Ratio(3, 0); r != 0 {
		t.Errorf("expected 0 for zero denominator, got %v", r)
	}
}
