// Package generator turns project parameters and an application stack into
// a Maven project tree on disk.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/freshmaven/cli/internal/action"
	"github.com/freshmaven/cli/internal/catalog"
	"github.com/freshmaven/cli/internal/output"
	"github.com/freshmaven/cli/internal/project"
	"github.com/freshmaven/cli/internal/property"
	"github.com/freshmaven/cli/internal/templates"
)

// Generator runs the generation phases in order: build the rendering
// context, create the project root, resolve folder properties, create
// folders, then render pom.xml, the remaining files and the git files.
type Generator struct {
	fs      afero.Fs
	merger  templates.Merger
	catalog *catalog.Catalog
}

// New creates a generator writing to fsys. A nil fsys writes to disk.
func New(fsys afero.Fs, merger templates.Merger, cat *catalog.Catalog) *Generator {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Generator{fs: fsys, merger: merger, catalog: cat}
}

// Result describes a finished generation.
type Result struct {
	// Root is the absolute project folder.
	Root string

	// Files are the written files relative to Root, in write order.
	Files []string

	// Passes is the number of folder resolution passes.
	Passes int

	// Properties holds every resolved folder property and path.
	Properties *property.Repository
}

// Generate creates the project described by p.
// Nothing is rolled back on failure; a partial tree may remain.
func (g *Generator) Generate(p project.Parameters) (*Result, error) {
	actions, err := g.catalog.ActionList(p.Stack)
	if err != nil {
		return nil, fmt.Errorf("stack %s: %w", p.Stack.Name, err)
	}
	output.Debug("Application type selected.", "stack", p.Stack.Name, "actions", len(p.Stack.Actions))

	ids := p.Derive()
	output.Debug("Project name: '" + ids.ProjectName + "', packageName: '" + ids.PackageName + "'.")

	ctx, err := BuildContext(ids, actions, g.merger)
	if err != nil {
		return nil, err
	}
	output.Debug("Rendering context built.", "keys", strings.Join(ctx.Keys(), ", "))

	props := property.NewRepository()
	root, err := CreateProjectRoot(g.fs, p.ProjectFolder(), props)
	if err != nil {
		return nil, err
	}

	folders := action.FolderPaths(actions)
	passes, err := ResolveFolders(folders, ctx, props, g.merger)
	if err != nil {
		return nil, err
	}
	output.Debug("Folder properties resolved.", "passes", passes)

	if err := CreateFolders(g.fs, root, folders, props); err != nil {
		return nil, err
	}

	files := action.Files(actions)
	var written []string

	pom, err := RenderFiles(g.fs, files, IsPomFile, ctx, props, g.merger)
	written = append(written, pom...)
	if err != nil {
		return nil, err
	}

	rest, err := RenderFiles(g.fs, files, IsNotPomFile, ctx, props, g.merger)
	written = append(written, rest...)
	if err != nil {
		return nil, err
	}

	if p.NoGit {
		output.Debug("Git files skipped.")
	} else {
		git, err := RenderFiles(g.fs, GitFiles, nil, ctx, props, g.merger)
		written = append(written, git...)
		if err != nil {
			return nil, err
		}
	}

	rel := make([]string, 0, len(written))
	for _, path := range written {
		r, err := filepath.Rel(root, path)
		if err != nil {
			r = path
		}
		rel = append(rel, filepath.ToSlash(r))
	}

	for _, key := range props.Keys() {
		v, _ := props.GetString(key)
		output.Debug("Property.", "key", key, "value", v)
	}

	return &Result{Root: root, Files: rel, Passes: passes, Properties: props}, nil
}
