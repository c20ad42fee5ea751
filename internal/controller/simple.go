package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cesty/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately, there is nothing to interact with.
func (s *SimpleUI) Wait() {}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	if shardCount > 1 {
		s.printf("Extracting with %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
		return
	}

	s.printf("Extracting with %d worker(s)\n", threads)
}

// DisplayTests prints one table row per discovered test.
func (s *SimpleUI) DisplayTests(results []m.FileResult) error {
	sum := summarize(results)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Test", "Signature", "Run"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	for _, row := range sum.rows {
		table.Append([]string{row.file, row.name, row.signature, runLabel(row.run)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", sum.files),
		fmt.Sprintf("%d", len(sum.rows)),
		fmt.Sprintf("Failed %d", sum.failed),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayAlerts renders every warning and error to stderr.
func (s *SimpleUI) DisplayAlerts(results []m.FileResult) {
	renderAlerts(s.cmd.ErrOrStderr(), results)
}

// DisplayEnvironment prints the text of a view untouched so it can be piped
// into a compiler.
func (s *SimpleUI) DisplayEnvironment(_ m.Path, _ m.EnvironmentView, text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	return err
}

// DisplaySavedEnvironment lists the written files.
func (s *SimpleUI) DisplaySavedEnvironment(paths []m.Path) {
	for _, path := range paths {
		s.printf("saved %s\n", path)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func runLabel(run bool) string {
	if run {
		return "yes"
	}

	return "no"
}
