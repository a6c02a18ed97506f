package cli

import (
	"log/slog"

	"cpu-scheduler-visualizer/config"
	"cpu-scheduler-visualizer/internal/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string

	config *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the sched CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sched",
		Short: "Simulate classical CPU scheduling algorithms",
		Long: `sched simulates First-Come-First-Served, Shortest-Job-First, Priority and
Round-Robin scheduling on a list of processes and prints a gantt chart with
per-process waiting and turnaround times.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			if opts.debug {
				cfg.LogLevel = "debug"
			}
			opts.config = cfg
			opts.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSimulateCmd(opts),
		newCompareCmd(opts),
		newServeCmd(opts),
	)

	return root
}
