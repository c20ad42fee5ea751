package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/cesty/internal/adapter"
	"github.com/mouse-blink/cesty/internal/controller"
	m "github.com/mouse-blink/cesty/internal/model"
)

// DefaultEnvironmentDir is where environments are written when no output
// directory is given.
const DefaultEnvironmentDir = ".cesty"

// ExtractArgs selects the files to extract.
type ExtractArgs struct {
	Paths           []m.Path
	Exclude         []string
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// EnvArgs selects the environment of a single file.
type EnvArgs struct {
	Path m.Path
	// View prints a single rendering instead of saving all of them.
	View   m.EnvironmentView
	Output m.Path
}

// ErrFilesFailed is returned when at least one file could not be extracted.
var ErrFilesFailed = errors.New("some files failed to extract")

// Workflow defines the user facing operations.
type Workflow interface {
	Extract(ctx context.Context, args ExtractArgs) ([]m.FileResult, error)
	List(ctx context.Context, args ExtractArgs) error
	Env(ctx context.Context, args EnvArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.EnvironmentStore
	ui        controller.UI
	orch      Orchestrator
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.EnvironmentStore,
	ui controller.UI,
	orch Orchestrator,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		orch:      orch,
		logger:    logger,
	}
}

// Extract discovers the C files under args.Paths and extracts every one of
// them. Results keep the discovery order whatever the number of threads.
// Per file failures are recorded in the results, only discovery errors and
// cancellation are returned.
func (w *workflow) Extract(ctx context.Context, args ExtractArgs) ([]m.FileResult, error) {
	paths, err := w.discover(args)
	if err != nil {
		return nil, err
	}

	results := make([]m.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(args.Threads, 1))

	for i, path := range paths {
		g.Go(func() error {
			file, warnings, err := w.orch.Extract(ctx, path)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}

			if err != nil {
				file.Path = path
				w.logger.Debug("extraction failed", slog.String("path", string(path)), slog.Any("error", err))
			}

			results[i] = m.FileResult{File: file, Warnings: warnings, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// List extracts the files and shows the discovered tests together with
// every diagnostic.
func (w *workflow) List(ctx context.Context, args ExtractArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(max(args.Threads, 1), args.ShardIndex, max(args.TotalShardCount, 1))

	results, err := w.Extract(ctx, args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayTests(results); err != nil {
		return err
	}

	w.ui.DisplayAlerts(results)
	w.ui.Wait()

	for _, result := range results {
		if result.Failed() {
			return ErrFilesFailed
		}
	}

	return nil
}

// Env extracts a single file and either prints one environment view or
// saves all of them under args.Output.
func (w *workflow) Env(ctx context.Context, args EnvArgs) error {
	if err := w.ui.Start(controller.WithEnvMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	file, warnings, err := w.orch.Extract(ctx, args.Path)
	if err != nil {
		file.Path = args.Path
	}

	w.ui.DisplayAlerts([]m.FileResult{{File: file, Warnings: warnings, Err: err}})

	if err != nil {
		return err
	}

	if args.View != "" {
		text, err := file.Environment.View(args.View)
		if err != nil {
			return err
		}

		return w.ui.DisplayEnvironment(file.Path, args.View, text)
	}

	output := args.Output
	if output == "" {
		output = DefaultEnvironmentDir
	}

	saved, err := w.store.Save(output, file, m.EnvironmentViews()...)
	if err != nil {
		return fmt.Errorf("saving environment of %s: %w", file.Path, err)
	}

	w.ui.DisplaySavedEnvironment(saved)

	return nil
}

func (w *workflow) discover(args ExtractArgs) ([]m.Path, error) {
	paths, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return nil, err
	}

	paths, err = filterExcluded(paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	paths = shardPaths(paths, args.ShardIndex, args.TotalShardCount)

	w.logger.Debug("discovered sources", slog.Int("files", len(paths)))

	return paths, nil
}

func filterExcluded(paths []m.Path, patterns []string) ([]m.Path, error) {
	if len(patterns) == 0 {
		return paths, nil
	}

	regexps := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexps = append(regexps, re)
	}

	kept := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		excluded := false

		for _, re := range regexps {
			if re.MatchString(string(path)) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, path)
		}
	}

	return kept, nil
}

// shardPaths keeps every path whose index falls into the given shard.
func shardPaths(paths []m.Path, index, total int) []m.Path {
	if total <= 1 {
		return paths
	}

	kept := make([]m.Path, 0, len(paths)/total+1)

	for i, path := range paths {
		if i%total == index {
			kept = append(kept, path)
		}
	}

	return kept
}
