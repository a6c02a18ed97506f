package cli

import (
	"fmt"

	"cpu-scheduler-visualizer/internal/core"
	"cpu-scheduler-visualizer/internal/requests"
	"cpu-scheduler-visualizer/internal/workload"
	"github.com/spf13/cobra"
)

// inputFlags are the process sources shared by simulate and compare.
type inputFlags struct {
	file      string
	processes []string
	quantum   int
	json      bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Workload file (.yaml, .yml or .csv)")
	cmd.Flags().StringArrayVarP(&f.processes, "process", "p", nil, "Process as arrival,burst[,priority] (repeatable)")
	cmd.Flags().IntVarP(&f.quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().BoolVar(&f.json, "json", false, "Machine-readable JSON output")
}

// specs gathers file processes first, then --process flags. Unnamed
// processes are numbered P1, P2, ... in that combined order.
func (f *inputFlags) specs() ([]core.ProcessSpec, error) {
	var jobs []requests.Job
	if f.file != "" {
		loaded, err := workload.LoadFile(f.file)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, loaded...)
	}
	for _, p := range f.processes {
		job, err := requests.ParseJob(p)
		if err != nil {
			return nil, fmt.Errorf("--process %q: %w", p, err)
		}
		jobs = append(jobs, job)
	}
	return requests.JobsToSpecs(jobs)
}

// timeQuantum uses the config default unless --quantum was given.
func (f *inputFlags) timeQuantum(cmd *cobra.Command, opts *rootOptions) (int, error) {
	var requested *int
	if cmd.Flags().Changed("quantum") {
		requested = &f.quantum
	}
	return requests.ResolveQuantum(requested, opts.config.RoundRobinTimeQuantum)
}
