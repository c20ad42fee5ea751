package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/cesty/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output    io.Writer
	errOutput io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	runErr  error

	// alerts are held back while the program owns the screen.
	alerts bytes.Buffer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput}
}

// Start initializes the UI. List mode takes over the screen until the user
// quits; env mode prints directly.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.mode != ModeList {
		return nil
	}

	model := newTestListModel()

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
		}
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan struct{})
	t.started = true

	go func(program *tea.Program, done chan struct{}) {
		_, err := program.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		close(done)
	}(t.program, t.done)

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.startWithModel(newTestListModel())
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program and prints the alerts held back while it ran.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program != nil {
		program.Quit()
		<-done
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runErr != nil {
		_, _ = fmt.Fprintf(t.errOutput, "tui error: %v\n", t.runErr)
		t.runErr = nil
	}

	if t.alerts.Len() > 0 {
		_, _ = t.alerts.WriteTo(t.errOutput)
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayTests hands the discovered tests to the list.
func (t *TUI) DisplayTests(results []m.FileResult) error {
	t.ensureStarted()
	t.send(newTestsMsg(summarize(results)))

	return nil
}

// DisplayAlerts renders the alerts now when nothing owns the screen and
// after Close otherwise.
func (t *TUI) DisplayAlerts(results []m.FileResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		renderAlerts(&t.alerts, results)
		return
	}

	renderAlerts(t.errOutput, results)
}

// DisplayEnvironment prints the text of a view untouched.
func (t *TUI) DisplayEnvironment(_ m.Path, _ m.EnvironmentView, text string) error {
	_, err := fmt.Fprint(t.output, text)
	return err
}

// DisplaySavedEnvironment lists the written files.
func (t *TUI) DisplaySavedEnvironment(paths []m.Path) {
	for _, path := range paths {
		_, _ = fmt.Fprintf(t.output, "saved %s\n", path)
	}
}
