package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cesty/internal/domain"
)

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return len(args.Exclude) == 2 && args.Exclude[0] == "/vendor/" && args.Exclude[1] == "_gen\\.c$"
	})).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"list", "-x", "/vendor/", "-x", "_gen\\.c$", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WithSharding(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return args.Threads == 2 && args.ShardIndex == 2 && args.TotalShardCount == 4
	})).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"list", "-p", "2", "-s", "2/4"})
	require.NoError(t, cmd.Execute())
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
	assert.NotNil(t, cmd.Flags().Lookup("shard"))
}
