package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	runColumnWidth  = 5
	nameColumnWidth = 24
	scrollPause     = 5
	scrollGap       = "   "
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// testListDelegate renders one test per line: run flag, name, signature
// and file. The selected line scrolls when it does not fit.
type testListDelegate struct {
	offset int
}

func (d testListDelegate) Height() int  { return 1 }
func (d testListDelegate) Spacing() int { return 0 }
func (d testListDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d testListDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	test, ok := item.(testItem)
	if !ok {
		return
	}

	runStyle := lipgloss.NewStyle().Width(runColumnWidth).Bold(true)
	nameStyle := lipgloss.NewStyle().Width(nameColumnWidth)
	restStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if test.run {
		runStyle = runStyle.Foreground(lipgloss.Color("10"))
	} else {
		runStyle = runStyle.Foreground(lipgloss.Color("8"))
	}

	width := m.Width() - runColumnWidth - nameColumnWidth - 4
	rest := fmt.Sprintf("%s  %s", test.signature, test.file)

	display := truncateToWidth(rest, width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		runStyle = runStyle.Inherit(selected).Foreground(lipgloss.Color("0"))
		nameStyle = nameStyle.Inherit(selected)
		restStyle = selected
		display = animateScroll(rest, width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		runStyle.Render(runLabel(test.run)),
		nameStyle.Render(truncateToWidth(test.name, nameColumnWidth)),
		restStyle.Render(display),
	)
}

// animateScroll returns the window of text visible after offset ticks.
// Text that fits is returned as is.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width || offset < scrollPause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + scrollGap)
	start := (offset - scrollPause) % len(runes)

	window := make([]rune, 0, width)
	for i := range width {
		window = append(window, runes[(start+i)%len(runes)])
	}

	return string(window)
}

func truncateToWidth(text string, width int) string {
	const ellipsis = "…"

	switch {
	case width <= 0:
		return ""
	case lipgloss.Width(text) <= width:
		return text
	case width <= lipgloss.Width(ellipsis):
		return ellipsis
	}

	limit := width - lipgloss.Width(ellipsis)
	used := 0

	kept := make([]rune, 0, len(text))
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > limit {
			break
		}

		kept = append(kept, r)
		used += w
	}

	return string(kept) + ellipsis
}

// testListModel shows the discovered tests until the user quits.
type testListModel struct {
	width        int
	height       int
	tests        list.Model
	delegate     testListDelegate
	files        int
	failed       int
	concurrency  concurrencyMsg
	rendered     bool
	animOffset   int
	lastSelected int
}

func newTestListModel() testListModel {
	delegate := testListDelegate{}
	tests := list.New([]list.Item{}, delegate, 80, 20)
	tests.SetShowPagination(false)
	tests.SetShowFilter(true)
	tests.SetShowHelp(false)
	tests.SetShowTitle(false)
	tests.SetShowStatusBar(false)
	tests.FilterInput.Placeholder = "Filter by test or path…"

	return testListModel{
		tests:        tests,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m testListModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m testListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tests.SetWidth(m.width)

		return m, nil

	case tickMsg:
		if m.tests.FilterState() == list.Filtering || !m.rendered {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.tests.SetDelegate(m.delegate)

		return m, tick(150 * time.Millisecond)

	case tea.KeyMsg:
		if m.tests.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.tests, cmd = m.tests.Update(msg)

		if m.tests.Index() != m.lastSelected {
			m.lastSelected = m.tests.Index()
			m.resetScroll()
		}

		return m, cmd

	case concurrencyMsg:
		m.concurrency = msg

		return m, nil

	case testsMsg:
		return m.handleTestsMsg(msg), tick(150 * time.Millisecond)
	}

	return m, nil
}

func (m *testListModel) resetScroll() {
	m.animOffset = 0
	m.delegate.offset = 0
	m.tests.SetDelegate(m.delegate)
}

func (m testListModel) handleTestsMsg(msg testsMsg) testListModel {
	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		items = append(items, item)
	}

	m.tests.SetItems(items)
	m.files = msg.files
	m.failed = msg.failed
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m testListModel) View() string {
	if !m.rendered {
		return "Extracting tests…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	summary := fmt.Sprintf("Tests: %s   Files: %s   Failed: %s",
		accent.Render(fmt.Sprintf("%d", len(m.tests.Items()))),
		accent.Render(fmt.Sprintf("%d", m.files)),
		failure.Render(fmt.Sprintf("%d", m.failed)),
	)

	if m.concurrency.shards > 1 {
		summary += fmt.Sprintf("   Shard: %s",
			accent.Render(fmt.Sprintf("%d/%d", m.concurrency.shardIndex, m.concurrency.shards)))
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🧪 Cesty Tests"),
		summaryStyle.Render(summary),
		m.renderTable(),
		footer,
	)
}

func (m testListModel) renderTable() string {
	// Title, summary, footer, border and header take nine lines.
	listHeight := max(m.height-9, 5)
	// Margin, border and padding take two columns each.
	listWidth := m.width - 6

	m.tests.SetHeight(listHeight)
	m.tests.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-*s  %-*s  %s", runColumnWidth, "Run", nameColumnWidth, "Test", "Signature  File"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.tests.View()))
}
