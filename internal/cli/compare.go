package cli

import (
	"encoding/json"
	"fmt"

	"cpu-scheduler-visualizer/internal/render"
	"cpu-scheduler-visualizer/internal/schedulers"
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var (
		input   inputFlags
		details bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same processes and compare averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := input.specs()
			if err != nil {
				return err
			}
			quantum, err := input.timeQuantum(cmd, opts)
			if err != nil {
				return err
			}

			opts.logger.Info("running all algorithms", "processes", len(specs), "time_quantum", quantum)
			outcomes, err := schedulers.ScheduleAll(cmd.Context(), specs, quantum)
			if err != nil {
				return err
			}
			compare := schedulers.GenerateCompareResponse(outcomes, quantum)

			out := cmd.OutOrStdout()
			if input.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(compare)
			}
			if details {
				for _, resp := range compare.Results {
					if err := render.Report(out, resp, opts.config.GanttWidth); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
			}
			return render.Comparison(out, compare)
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&details, "details", false, "Also print each algorithm's gantt chart and table")
	return cmd
}
