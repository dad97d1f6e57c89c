package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshmaven/cli/internal/output"
	"github.com/freshmaven/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show fresh-maven-project version information.

Displays:
  - version, commit and build date
  - Go version used to build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
