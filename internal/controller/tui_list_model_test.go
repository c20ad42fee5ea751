package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedModel(t *testing.T) testListModel {
	t.Helper()

	model := newTestListModel()

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	updated, _ = updated.Update(newTestsMsg(summarize(sampleResults())))

	loaded, ok := updated.(testListModel)
	require.True(t, ok)

	return loaded
}

func TestTestListModel_LoadingView(t *testing.T) {
	assert.Equal(t, "Extracting tests…\n", newTestListModel().View())
}

func TestTestListModel_HandlesTests(t *testing.T) {
	model := loadedModel(t)

	assert.True(t, model.rendered)
	assert.Equal(t, 3, model.files)
	assert.Equal(t, 2, model.failed)
	assert.Len(t, model.tests.Items(), 2)
	assert.Equal(t, 0, model.lastSelected)

	view := model.View()
	assert.Contains(t, view, "Cesty Tests")
	assert.Contains(t, view, "diff")
	assert.Contains(t, view, "q quit")
}

func TestTestListModel_ShowsShard(t *testing.T) {
	model := loadedModel(t)

	updated, _ := model.Update(concurrencyMsg{threads: 2, shardIndex: 1, shards: 3})
	assert.Contains(t, updated.View(), "1/3")
}

func TestTestListModel_Quit(t *testing.T) {
	model := loadedModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTestListModel_SelectionResetsScroll(t *testing.T) {
	model := loadedModel(t)
	model.animOffset = 7

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	moved, ok := updated.(testListModel)
	require.True(t, ok)

	assert.Equal(t, 1, moved.lastSelected)
	assert.Equal(t, 0, moved.animOffset)
}

func TestTestListModel_TickAdvancesScroll(t *testing.T) {
	model := loadedModel(t)

	updated, cmd := model.Update(tickMsg{})
	ticked, ok := updated.(testListModel)
	require.True(t, ok)

	assert.Equal(t, 1, ticked.animOffset)
	assert.NotNil(t, cmd)

	idle, cmd := newTestListModel().Update(tickMsg{})
	assert.Equal(t, 0, idle.(testListModel).animOffset)
	assert.Nil(t, cmd)
}

func TestTestListDelegate_Render(t *testing.T) {
	model := list.New(nil, testListDelegate{}, 80, 5)

	var buf bytes.Buffer
	testListDelegate{}.Render(&buf, model, 1, testItem{name: "sum", signature: "void cesty_sum(void)", file: "/src/math.c", run: true})

	assert.Contains(t, buf.String(), "yes")
	assert.Contains(t, buf.String(), "sum")
	assert.Contains(t, buf.String(), "/src/math.c")
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 6, "trunc…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := truncateToWidth(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), max(tt.width, 0))
		})
	}
}

func TestAnimateScroll(t *testing.T) {
	t.Run("fitting text does not move", func(t *testing.T) {
		assert.Equal(t, "abc", animateScroll("abc", 10, 42))
	})

	t.Run("pauses before scrolling", func(t *testing.T) {
		assert.Equal(t, "abcd…", animateScroll("abcdefgh", 5, scrollPause-1))
	})

	t.Run("scrolls and wraps around", func(t *testing.T) {
		assert.Equal(t, "bcdef", animateScroll("abcdefgh", 5, scrollPause+1))

		wrapped := animateScroll("abcdefgh", 5, scrollPause+9)
		assert.Equal(t, 5, len([]rune(wrapped)))
		assert.True(t, strings.HasPrefix(wrapped, "  "))
	})
}
