package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/freshmaven/cli/internal/action"
	oerrors "github.com/freshmaven/cli/internal/errors"
	"github.com/freshmaven/cli/internal/output"
	"github.com/freshmaven/cli/internal/property"
	"github.com/freshmaven/cli/internal/templates"
)

// PomFileName is the target of the pom pass.
const PomFileName = "pom.xml"

// GitFiles are rendered into the project root unless git files are disabled.
var GitFiles = []action.File{
	{Source: templates.ReadmeTemplate, Target: "README.md", Property: ProjectFolderProperty},
	{Source: templates.GitignoreTemplate, Target: ".gitignore", Property: ProjectFolderProperty},
}

// IsPomFile reports whether f renders the project's pom.xml.
func IsPomFile(f action.File) bool {
	return f.Target == PomFileName
}

// IsNotPomFile reports whether f renders anything but pom.xml.
func IsNotPomFile(f action.File) bool {
	return !IsPomFile(f)
}

// targetDir returns the directory a file action writes into.
func targetDir(f action.File, props *property.Repository) (string, error) {
	key := f.Property
	if key != ProjectFolderProperty {
		key += PathSuffix
	}
	dir, ok := props.GetString(key)
	if !ok {
		return "", fmt.Errorf("property name '%s' is not stored in the property repository (file %s): %w",
			key, f.Target, ErrPropertyNotStored)
	}
	return dir, nil
}

// RenderFiles merges and writes every file action accepted by keep.
// It returns the written paths in order.
func RenderFiles(fsys afero.Fs, files []action.File, keep func(action.File) bool,
	ctx *templates.Context, props *property.Repository, merger templates.Merger) ([]string, error) {
	var written []string
	for _, f := range files {
		if keep != nil && !keep(f) {
			continue
		}

		dir, err := targetDir(f, props)
		if err != nil {
			return written, err
		}

		content, err := merger.Merge(f.Source, ctx)
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, f.Target)
		if err := afero.WriteReader(fsys, path, strings.NewReader(content)); err != nil {
			return written, oerrors.NewIOError("could not write file", path, err)
		}
		output.Debug("File created.", "source", f.Source, "path", path)
		written = append(written, path)
	}
	return written, nil
}
