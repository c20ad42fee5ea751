package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/cesty/internal/adapter"
	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

// Orchestrator coordinates reading, parsing, walking and synthesizing a
// single C file.
type Orchestrator interface {
	// Extract processes one file. Warnings are returned alongside an error
	// when they were found before processing stopped.
	Extract(ctx context.Context, path m.Path) (m.ParsedFile, []*diag.Alert, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	cAdapter  adapter.CFileAdapter
	opts      Options
	logger    *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and C front end adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, cAdapter adapter.CFileAdapter, opts Options, logger *slog.Logger) Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		cAdapter:  cAdapter,
		opts:      opts.withDefaults(),
		logger:    logger,
	}
}

func (o *orchestrator) Extract(ctx context.Context, path m.Path) (m.ParsedFile, []*diag.Alert, error) {
	if err := ctx.Err(); err != nil {
		return m.ParsedFile{}, nil, err
	}

	stem := path.Stem()
	if stem == "" {
		return m.ParsedFile{}, nil, diag.NewError(diag.EnvMissingStem, "failed to extract file stem from path").
			WithNote(fmt.Sprintf("the path `%s` has no file name", path))
	}

	content, err := o.fsAdapter.ReadFile(path)
	if err != nil {
		return m.ParsedFile{}, nil, diag.NewError(diag.IOReadFailed, "failed to extract file contents").
			WithNote(fmt.Sprintf("reading `%s` failed with:", path), err.Error())
	}

	tu, err := o.cAdapter.Parse(ctx, path, content)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.ParsedFile{}, nil, ctxErr
		}

		return m.ParsedFile{}, nil, diag.NewError(diag.IOParseFailed, "failed to parse the translation unit").
			WithNote(err.Error())
	}
	defer tu.Close()

	if tu.HasErrors() {
		o.logger.Debug("parser recovered from syntax errors", slog.String("path", string(path)))
	}

	file := NewSourceFile(path, content)

	res, err := Walk(file, tu.Root(), o.opts)
	if err != nil {
		return m.ParsedFile{}, res.Warnings, err
	}

	env, err := Synthesize(string(content), res.Modifications)
	if err != nil {
		return m.ParsedFile{}, res.Warnings, err
	}

	o.logger.Debug("extracted file",
		slog.String("path", string(path)),
		slog.Int("tests", len(res.Tests)),
		slog.Bool("entry_point", res.Main != nil),
		slog.Int("warnings", len(res.Warnings)),
	)

	return m.ParsedFile{
		Path:          path,
		Stem:          stem,
		Tests:         res.Tests,
		Main:          res.Main,
		Modifications: res.Modifications,
		Environment:   env,
	}, res.Warnings, nil
}
