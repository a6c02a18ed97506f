package schedulers

import (
	"errors"
	"testing"

	"cpu-scheduler-visualizer/internal/core"
)

func TestScheduleShortestJobFirst_Textbook(t *testing.T) {
	specs := []core.ProcessSpec{
		spec("P1", 0, 8, 0),
		spec("P2", 1, 4, 0),
		spec("P3", 2, 9, 0),
		spec("P4", 3, 5, 0),
	}

	result, err := ScheduleShortestJobFirst(specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// P1 alone at t=0 runs to completion; then shortest of the rest.
	assertGantt(t, result.Gantt, []core.GanttSegment{
		seg("P1", 0, 8), seg("P2", 8, 12), seg("P4", 12, 17), seg("P3", 17, 26),
	})
	if avg := averageWaiting(result); avg != 7.75 {
		t.Errorf("expected average waiting 7.75, got %v", avg)
	}
	assertInvariants(t, specs, result, 0)
}

func TestScheduleShortestJobFirst_TieBreak(t *testing.T) {
	// equal burst: earlier arrival first, then lower id
	specs := []core.ProcessSpec{
		spec("P1", 0, 6, 0),
		spec("P4", 2, 3, 0),
		spec("P3", 1, 3, 0),
		spec("P2", 1, 3, 0),
	}

	result, err := ScheduleShortestJobFirst(specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertGantt(t, result.Gantt, []core.GanttSegment{
		seg("P1", 0, 6), seg("P2", 6, 9), seg("P3", 9, 12), seg("P4", 12, 15),
	})
}

func TestScheduleShortestJobFirst_IdleJump(t *testing.T) {
	specs := []core.ProcessSpec{spec("P1", 2, 2, 0), spec("P2", 9, 1, 0), spec("P3", 9, 4, 0)}

	result, err := ScheduleShortestJobFirst(specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("P1", 2, 4), seg("P2", 9, 10), seg("P3", 10, 14)})
	if result.Metric.IdleTime != 7 {
		t.Errorf("expected idle 7, got %d", result.Metric.IdleTime)
	}
}

func TestScheduleShortestJobFirst_Empty(t *testing.T) {
	if _, err := ScheduleShortestJobFirst([]core.ProcessSpec{}); !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("expected ErrEmptyRoster, got %v", err)
	}
}
