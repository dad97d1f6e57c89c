package generator

import (
	"fmt"
	"strings"

	"github.com/freshmaven/cli/internal/action"
	"github.com/freshmaven/cli/internal/project"
	"github.com/freshmaven/cli/internal/templates"
)

// BuildContext creates the rendering context for one project: the scalar
// identifiers plus the pom fragments collected from actions.
// Plugin fragments are merged once against the scalars so they can refer
// to values such as ${packageName}.
func BuildContext(ids project.Identifiers, actions action.List, merger templates.Merger) (*templates.Context, error) {
	ctx := templates.NewContext()
	ctx.Put(templates.KeyGroupID, ids.GroupID)
	ctx.Put(templates.KeyArtifactID, ids.ArtifactID)
	ctx.Put(templates.KeyVersionOfApplication, ids.Version)
	ctx.Put(templates.KeyProjectName, ids.ProjectName)
	ctx.Put(templates.KeyProgramNameUsedInPrintVersion, ids.ProgramNameUsedInPrintVersion)
	ctx.Put(templates.KeyPackageName, ids.PackageName)
	ctx.Put(templates.KeyPackageFolderPathName, ids.PackageFolderPathName)
	ctx.Put(templates.KeyPackaging, ids.Packaging)

	ctx.Put(templates.KeyDependencies, action.Fragments(action.KindPomDependency, actions))
	ctx.Put(templates.KeyProperties, propertiesEnvelope(action.Fragments(action.KindPomProperty, actions)))

	plugins, err := merger.MergeString(action.Fragments(action.KindPomPlugin, actions), ctx)
	if err != nil {
		return nil, fmt.Errorf("merging plugin fragments: %w", err)
	}
	ctx.Put(templates.KeyPlugins, plugins)

	return ctx, nil
}

// propertiesEnvelope wraps non-blank property entries in a <properties> element.
func propertiesEnvelope(entries string) string {
	if strings.TrimSpace(entries) == "" {
		return ""
	}
	return "    <properties>\n" + entries + "    </properties>\n"
}
