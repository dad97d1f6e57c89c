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

// ProjectFolderProperty names the project root in the property repository.
// File actions use it to target the root itself.
const ProjectFolderProperty = "projectFolderPathName"

// PathSuffix is appended to a folder property to name its created path.
const PathSuffix = "Path"

// Folder property inconsistencies found before any directory is created.
var (
	ErrPropertyNotStored  = fmt.Errorf("%w: property not stored", oerrors.ErrConsistency)
	ErrPropertyBlank      = fmt.Errorf("%w: property stored as empty string", oerrors.ErrConsistency)
	ErrPropertyUnresolved = fmt.Errorf("%w: property stored with variable name in it", oerrors.ErrConsistency)
)

// CreateProjectRoot creates root and records its absolute path under
// ProjectFolderProperty.
func CreateProjectRoot(fsys afero.Fs, root string, props *property.Repository) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", oerrors.NewIOError("could not resolve project folder", root, err)
	}

	output.Debug("Create Project Folder.", "path", abs)
	if exists, _ := afero.DirExists(fsys, abs); exists {
		output.Warn("Project folder already exists, existing files are overwritten.", "path", abs)
	}
	if err := fsys.MkdirAll(abs, 0o755); err != nil {
		return "", oerrors.NewIOError("could not create project folder", abs, err)
	}
	if err := props.Put(ProjectFolderProperty, abs); err != nil {
		return "", fmt.Errorf("%w: %w", oerrors.ErrConsistency, err)
	}
	return abs, nil
}

// CheckFolderProperties verifies that every folder property holds a usable
// value: present, not blank and free of placeholders.
func CheckFolderProperties(folders []action.FolderPath, props *property.Repository) error {
	for _, f := range folders {
		value, ok := props.GetString(f.Property)
		switch {
		case !ok:
			return fmt.Errorf("property name '%s' is not stored in the property repository: %w",
				f.Property, ErrPropertyNotStored)
		case strings.TrimSpace(value) == "":
			return fmt.Errorf("property name '%s' is stored in the property repository as empty string: %w",
				f.Property, ErrPropertyBlank)
		case templates.HasPlaceholder(value):
			return fmt.Errorf("property name '%s' is stored in the property repository with variable name in it, see '%s': %w",
				f.Property, value, ErrPropertyUnresolved)
		}
	}
	return nil
}

// CreateFolders creates one directory per folder action below root and
// records each absolute path under <property>Path. All properties are
// checked before the first directory is created.
func CreateFolders(fsys afero.Fs, root string, folders []action.FolderPath, props *property.Repository) error {
	if err := CheckFolderProperties(folders, props); err != nil {
		return err
	}

	for _, f := range folders {
		rel, _ := props.GetString(f.Property)
		path := filepath.Join(root, filepath.FromSlash(rel))

		if err := fsys.MkdirAll(path, 0o755); err != nil {
			return oerrors.NewIOError("could not create folder", path, err)
		}
		if err := props.Put(f.Property+PathSuffix, path); err != nil {
			return fmt.Errorf("%w: %w", oerrors.ErrConsistency, err)
		}
		output.Debug("Folder created.", "property", f.Property, "path", path)
	}
	return nil
}
