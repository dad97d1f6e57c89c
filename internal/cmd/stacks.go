package cmd

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/freshmaven/cli/internal/catalog"
	"github.com/freshmaven/cli/internal/output"
	"github.com/freshmaven/cli/internal/templates"
)

// NewStacksCmd creates the stacks command.
func NewStacksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stacks",
		Short: "List application kinds and their stacks",
		Long: heredoc.Doc(`
			List the application kinds and technology stacks that can be
			generated, including those added by the catalog file named in the
			config file (key: catalog).

			The first stack of a kind is used when --stack is not given.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStacks(cmd, opts)
		},
	}
}

func runStacks(cmd *cobra.Command, opts *rootOptions) error {
	s, err := loadSettings(cmd, opts)
	if err != nil {
		return reportError(err)
	}

	cat, err := catalog.Load(nil, s.catalog)
	if err != nil {
		return reportError(err)
	}
	logCatalog(cat)

	style := output.DefaultTableStyle()
	if !output.IsTerminal(cmd.OutOrStdout()) {
		style = output.PlainTableStyle()
	}
	output.Print(output.RenderStacksTable(stackRows(cat), style))
	output.Println("")
	return nil
}

// logCatalog lists the known action names and built-in templates as
// [VERBOSE] lines.
func logCatalog(cat *catalog.Catalog) {
	output.Debug("Actions available.", "names", strings.Join(cat.Actions().Names(), ", "))
	output.Debug("Built-in templates.", "names", strings.Join(templates.BuiltinNames(), ", "))
}

func stackRows(cat *catalog.Catalog) []output.StackRow {
	var rows []output.StackRow
	for _, k := range cat.Kinds() {
		for _, s := range k.Stacks {
			packaging := s.Packaging
			if packaging == "" {
				packaging = catalog.DefaultPackaging
			}
			rows = append(rows, output.StackRow{
				Kind:        k.Name,
				Stack:       s.Name,
				Packaging:   packaging,
				Description: s.Description,
			})
		}
	}
	return rows
}
