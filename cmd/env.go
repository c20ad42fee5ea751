package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cesty/internal/domain"
	m "github.com/mouse-blink/cesty/internal/model"
)

const envLongDescription = `Generate the environments a test binary is built from.

  full       the file as written
  mainless   the file without its main() definition
  templated  additionally every test body replaced by ';'

With --view the selected environment is printed to stdout. Otherwise all of
them are written to the output directory as <stem>_<view>.c.`

// envCmd represents the env command.
var envCmd = newEnvCmd()
var envViewFlag string
var envOutputFlag string

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env <file>",
		Short: "Generate test environments of a C file",
		Long:  envLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(envViewFlag)
			if err != nil {
				return err
			}

			return workflow.Env(cmd.Context(), domain.EnvArgs{
				Path:   m.Path(args[0]),
				View:   view,
				Output: m.Path(envOutputFlag),
			})
		},
	}
	cmd.Flags().StringVar(&envViewFlag, "view", "", "print a single environment: full, mainless or templated")
	cmd.Flags().StringVarP(&envOutputFlag, "out", "o", domain.DefaultEnvironmentDir, "directory the environments are written to")

	return cmd
}

func parseView(view string) (m.EnvironmentView, error) {
	if view == "" {
		return "", nil
	}

	for _, known := range m.EnvironmentViews() {
		if string(known) == view {
			return known, nil
		}
	}

	return "", fmt.Errorf("unknown view %q, expected one of %v", view, m.EnvironmentViews())
}

func init() {
	rootCmd.AddCommand(envCmd)
}
