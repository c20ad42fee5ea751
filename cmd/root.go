// Package cmd provides the root command and CLI setup for cesty.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cesty/internal/adapter"
	"github.com/mouse-blink/cesty/internal/controller"
	"github.com/mouse-blink/cesty/internal/domain"
	m "github.com/mouse-blink/cesty/internal/model"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var fsAdapter adapter.SourceFSAdapter
var cFileAdapter adapter.CFileAdapter
var environmentStore adapter.EnvironmentStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	cFileAdapter = adapter.NewLocalCFileAdapter()
	environmentStore = adapter.NewLocalEnvironmentStore(fsAdapter)
	orchestrator = domain.NewOrchestrator(fsAdapter, cFileAdapter, domain.DefaultOptions(), logger)
	workflow = domain.NewWorkflow(
		fsAdapter,
		environmentStore,
		ui,
		orchestrator,
		logger,
	)
}

var parallelFlag int
var shardFlag string
var excludeFlags []string
var verboseFlag bool
var noColorFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cesty [paths...]",
		Short: "C test discovery and environment generator",
		Long: `Cesty finds test functions in C sources, reads the TOML configuration
written in the comment above each of them and prepares the environments
a test binary is built from.

Test functions are named with the cesty_ prefix, e.g. cesty_sum. Without
a subcommand the discovered tests are listed.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan multiple directories`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureOutput(verboseFlag, noColorFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), extractArgs(args, parallelFlag, shardFlag, excludeFlags))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every processing step to stderr")
	cmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored diagnostics")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files extracted in parallel")
	cmd.Flags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func configureOutput(verbose, noColor bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}

	if noColor {
		color.NoColor = true
	}
}

func extractArgs(args []string, parallel int, shard string, exclude []string) domain.ExtractArgs {
	shardIndex, totalShards := parseShardFlag(shard)

	return domain.ExtractArgs{
		Paths:           parsePaths(args),
		Exclude:         exclude,
		Threads:         parallel,
		ShardIndex:      shardIndex,
		TotalShardCount: totalShards,
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{m.Path(".")}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
