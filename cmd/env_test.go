package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cesty/internal/domain"
	m "github.com/mouse-blink/cesty/internal/model"
)

func TestEnvCmd_SavesByDefault(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Env", mock.Anything, domain.EnvArgs{
		Path:   m.Path("src/math.c"),
		Output: m.Path(domain.DefaultEnvironmentDir),
	}).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"env", "src/math.c"})
	require.NoError(t, cmd.Execute())
}

func TestEnvCmd_PrintsView(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Env", mock.Anything, mock.MatchedBy(func(args domain.EnvArgs) bool {
		return args.View == m.ViewTemplated && args.Output == m.Path("build/env")
	})).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"env", "--view", "templated", "-o", "build/env", "src/math.c"})
	require.NoError(t, cmd.Execute())
}

func TestEnvCmd_RejectsUnknownView(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"env", "--view", "partial", "src/math.c"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")
}

func TestEnvCmd_RequiresOneFile(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"env"})
	require.Error(t, cmd.Execute())
}

func TestParseView(t *testing.T) {
	for _, view := range m.EnvironmentViews() {
		got, err := parseView(string(view))
		require.NoError(t, err)
		assert.Equal(t, view, got)
	}

	got, err := parseView("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
