package cli

import (
	"encoding/json"

	"cpu-scheduler-visualizer/internal/render"
	"cpu-scheduler-visualizer/internal/schedulers"
	"github.com/spf13/cobra"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		input     inputFlags
		algorithm string
		width     int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm",
		Example: `  sched simulate -a fcfs -p 0,5 -p 1,3
  sched simulate -a rr -q 2 -f workload.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			specs, err := input.specs()
			if err != nil {
				return err
			}
			quantum := 0
			if alg == schedulers.RoundRobin {
				if quantum, err = input.timeQuantum(cmd, opts); err != nil {
					return err
				}
			}

			opts.logger.Info("running algorithm", "algorithm", alg.String(), "processes", len(specs), "time_quantum", quantum)
			result, err := schedulers.Schedule(alg, specs, quantum)
			if err != nil {
				return err
			}
			resp := schedulers.GenerateResponse(alg, quantum, result)
			opts.logger.Debug("simulation finished", "algorithm", alg.String(), "total_time", resp.TotalTime, "segments", len(resp.Gantt))

			if input.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			if width <= 0 {
				width = opts.config.GanttWidth
			}
			return render.Report(cmd.OutOrStdout(), resp, width)
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Algorithm: fcfs, sjf, priority, rr")
	cmd.Flags().IntVar(&width, "width", 0, "Target gantt chart width in columns (default from config)")
	return cmd
}
