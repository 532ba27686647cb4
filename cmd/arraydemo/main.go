package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/staticarrays/internal/config"
	"github.com/marcodamonte/staticarrays/internal/logging"
	"github.com/marcodamonte/staticarrays/internal/render"
)

// Walks through fixed-capacity array mechanics: O(1) access, traversal,
// removing and inserting at the end, and the shifting insert/remove in the
// middle.
//
// Run:
//
//	go run ./cmd/arraydemo
//	go run ./cmd/arraydemo run testdata/insert_middle.yaml --plain
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
	render render.Options
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		plain      bool
	)
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "arraydemo",
		Short: "Fixed-capacity array walkthrough",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			if plain {
				cfg.Render.Plain = true
			}

			logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			a.out = cmd.OutOrStdout()
			a.render = render.Options{Plain: cfg.Render.Plain, ShowIndices: cfg.Render.ShowIndices}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.walkthrough()
		},
	}

	root.SilenceUsage = true
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&plain, "plain", false, "render arrays without colors or borders")

	root.AddCommand(
		&cobra.Command{
			Use:   "walkthrough",
			Short: "Print every array operation step by step",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.walkthrough()
			},
		},
		&cobra.Command{
			Use:   "run <scenario.yaml>...",
			Short: "Replay YAML scenarios and print the array after each step",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, path := range args {
					if err := a.runScenario(path); err != nil {
						return fmt.Errorf("run %s: %w", path, err)
					}
				}
				return nil
			},
		},
	)

	return root
}

func (a *app) section(title string) {
	fmt.Fprintf(a.out, "\n%s\n", render.Section(title, a.render))
}
