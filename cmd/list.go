package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List every test function found in the C sources under the given paths.

Each row shows the test name, its signature and whether its configuration
lets it run. Warnings and errors are printed to stderr; the command fails
when any file could not be extracted.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listParallelFlag int
var listShardFlag string
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List discovered tests",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), extractArgs(args, listParallelFlag, listShardFlag, listExcludeFlags))
		},
	}
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 1, "number of files extracted in parallel")
	cmd.Flags().StringVarP(&listShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
