package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cesty/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_DisplayTests(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start(WithListMode()))
	require.NoError(t, ui.DisplayTests(sampleResults()))
	ui.Wait()
	ui.Close()

	got := out.String()
	assert.Contains(t, got, "/src/math.c")
	assert.Contains(t, got, "void cesty_sum(void)")
	assert.Contains(t, got, "int cesty_diff(int)")
	assert.Contains(t, got, "TOTAL FILES 3")
	assert.Contains(t, got, "FAILED 2")
	assert.NotContains(t, got, "broken.c")
}

func TestSimpleUI_DisplayAlerts(t *testing.T) {
	cmd, out, errOut := newTestCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayAlerts(sampleResults())

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "warning[TST3001]")
	assert.Contains(t, errOut.String(), "error[TST3002]")
}

func TestSimpleUI_DisplayConcurrencyInfo(t *testing.T) {
	t.Run("without shards", func(t *testing.T) {
		cmd, out, _ := newTestCmd()
		NewSimpleUI(cmd).DisplayConcurrencyInfo(4, 0, 1)
		assert.Equal(t, "Extracting with 4 worker(s)\n", out.String())
	})

	t.Run("with shards", func(t *testing.T) {
		cmd, out, _ := newTestCmd()
		NewSimpleUI(cmd).DisplayConcurrencyInfo(2, 1, 3)
		assert.Equal(t, "Extracting with 2 worker(s), shard 1/3\n", out.String())
	})
}

func TestSimpleUI_Environment(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayEnvironment("/src/math.c", m.ViewFull, "int x;\n"))
	ui.DisplaySavedEnvironment([]m.Path{".cesty/math_full.c"})

	assert.Equal(t, "int x;\nsaved .cesty/math_full.c\n", out.String())
}
