package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/kellog/arguments"
	"github.com/xy-planning-network/kellog/logger"
	"github.com/xy-planning-network/kellog/revision"
)

type options struct {
	logFile string
	name    string
	reset   bool
	noInfer bool
	level   string
	argsOut string
}

// Execute runs the kellog command and returns its exit code.
func Execute() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "kellog",
		Short:         "Show leveled, colored logging with inferred value names",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			if err := logger.Setup(cfg); err != nil {
				return err
			}
			defer logger.Default().Close()

			revision.Report(cmd.Context(), logger.Info)
			arguments.Dump(cmd.Flags(), opts.argsOut, logger.Info)
			demo()

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.logFile, "log-file", "", "file every line is copied to")
	f.StringVar(&opts.name, "name", logger.DefaultName, "name of the logger")
	f.BoolVar(&opts.reset, "reset", false, "empty the log file first")
	f.BoolVar(&opts.noInfer, "no-infer", false, "do not label values with their names")
	f.StringVar(&opts.level, "level", logger.LevelDebug.String(), "lowest level written")
	f.StringVar(&opts.argsOut, "args-out", "", "file the arguments are saved to as JSON")

	return cmd
}

func (o *options) config() (logger.Config, error) {
	level, err := logger.ParseLevel(o.level)
	if err != nil {
		return logger.Config{}, err
	}

	return logger.NewConfig(
		logger.WithName(o.name),
		logger.WithFile(o.logFile),
		logger.WithReset(o.reset),
		logger.WithInference(!o.noInfer),
		logger.WithLevel(level),
	), nil
}
