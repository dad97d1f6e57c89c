package generator

import (
	"fmt"

	"github.com/freshmaven/cli/internal/action"
	oerrors "github.com/freshmaven/cli/internal/errors"
	"github.com/freshmaven/cli/internal/output"
	"github.com/freshmaven/cli/internal/property"
	"github.com/freshmaven/cli/internal/templates"
)

// MaxPasses bounds the number of resolution passes over the folder actions.
const MaxPasses = 10

// ResolveFolders merges every folder template against ctx until all folder
// properties hold placeholder-free values. Each resolved value is committed
// to both ctx and props, so later folders in the same pass can use it.
// It returns the number of passes run.
func ResolveFolders(folders []action.FolderPath, ctx *templates.Context, props *property.Repository, merger templates.Merger) (int, error) {
	logDuplicateFolders(folders)

	for pass := 1; pass <= MaxPasses; pass++ {
		unresolved := false

		for _, f := range folders {
			if props.Contains(f.Property) {
				continue
			}

			value, err := merger.MergeString(f.Template, ctx)
			if err != nil {
				return pass, fmt.Errorf("resolving folder property %s: %w", f.Property, err)
			}
			if templates.HasPlaceholder(value) {
				unresolved = true
				continue
			}

			if err := props.Put(f.Property, value); err != nil {
				return pass, fmt.Errorf("%w: %w", oerrors.ErrConsistency, err)
			}
			ctx.Put(f.Property, value)
			output.Debug("Resolved folder property.", "pass", pass, "property", f.Property, "value", value)
		}

		if !unresolved {
			return pass, nil
		}
	}

	d := diagnose(folders, ctx)
	return MaxPasses, fmt.Errorf("folder properties not resolved after %d passes (%s): %w",
		MaxPasses, d, oerrors.ErrUnresolved)
}

// logDuplicateFolders reports folder properties defined by more than one
// action. The first definition to resolve wins.
func logDuplicateFolders(folders []action.FolderPath) {
	seen := make(map[string]string, len(folders))
	for _, f := range folders {
		first, ok := seen[f.Property]
		if !ok {
			seen[f.Property] = f.Template
			continue
		}
		if first != f.Template {
			output.Debug("Folder property defined more than once, first resolved definition wins.",
				"property", f.Property, "template", f.Template)
		}
	}
}
