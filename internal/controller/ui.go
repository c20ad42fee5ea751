// Package controller provides output adapters for displaying extracted tests
// and diagnostics.
package controller

import (
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeEnv
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to test listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithEnvMode sets the UI to environment printing mode.
func WithEnvMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEnv
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying extraction results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayTests(results []m.FileResult) error
	DisplayAlerts(results []m.FileResult)
	DisplayEnvironment(path m.Path, view m.EnvironmentView, text string) error
	DisplaySavedEnvironment(paths []m.Path)
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// testRow is one discovered test as shown to the user.
type testRow struct {
	file      string
	name      string
	signature string
	run       bool
	line      int
}

// summary aggregates the results of a batch.
type summary struct {
	rows   []testRow
	files  int
	failed int
}

func summarize(results []m.FileResult) summary {
	s := summary{files: len(results)}

	for _, result := range results {
		if result.Failed() {
			s.failed++
			continue
		}

		for _, test := range result.File.Tests {
			s.rows = append(s.rows, testRow{
				file:      string(result.File.Path),
				name:      test.Function.Suffix,
				signature: test.Function.String(),
				run:       test.Config.Settings.Run,
				line:      test.Position.Line,
			})
		}
	}

	sort.SliceStable(s.rows, func(i, j int) bool {
		if s.rows[i].file != s.rows[j].file {
			return s.rows[i].file < s.rows[j].file
		}

		return s.rows[i].line < s.rows[j].line
	})

	return s
}

// alertsOf collects the diagnostics of every result in display order.
func alertsOf(results []m.FileResult) []*diag.Alert {
	var alerts []*diag.Alert

	for _, result := range results {
		alerts = append(alerts, result.Warnings...)

		if result.Err == nil {
			continue
		}

		if alert, ok := diag.AsAlert(result.Err); ok {
			alerts = append(alerts, alert)
			continue
		}

		alerts = append(alerts, diag.NewError(diag.IOReadFailed, "failed to extract file").
			WithNote(string(result.File.Path), result.Err.Error()))
	}

	return alerts
}

func renderAlerts(w io.Writer, results []m.FileResult) {
	alerts := alertsOf(results)
	if len(alerts) == 0 {
		return
	}

	_ = diag.RenderAll(w, alerts, diag.RenderOptions{Color: !color.NoColor})
}
