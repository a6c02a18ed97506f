package schedulers

import (
	"context"
	"fmt"

	"cpu-scheduler-visualizer/internal/core"
	"golang.org/x/sync/errgroup"
)

type Outcome struct {
	Algorithm Algorithm
	Result    core.SimulationResult
}

// ScheduleAll runs every policy concurrently on the same input. Each run works
// on its own copy so the shared slice is only read. Outcomes follow Algorithms.
func ScheduleAll(ctx context.Context, processes []core.ProcessSpec, timeQuantum int) ([]Outcome, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyRoster
	}

	outcomes := make([]Outcome, len(Algorithms))
	g, ctx := errgroup.WithContext(ctx)
	for i, algorithm := range Algorithms {
		i, algorithm := i, algorithm // per-iteration copies (go.mod targets Go 1.21)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := Schedule(algorithm, processes, timeQuantum)
			if err != nil {
				return fmt.Errorf("%s: %w", algorithm, err)
			}
			outcomes[i] = Outcome{Algorithm: algorithm, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
