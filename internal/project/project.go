// Package project holds the identifiers of the project being generated and
// the rules that derive the secondary names from them.
package project

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/freshmaven/cli/internal/catalog"
)

// DefaultVersion is the project version used when none is given.
const DefaultVersion = "1.0.0-SNAPSHOT"

// Parameters are the inputs of one generation run.
type Parameters struct {
	GroupID     string
	ArtifactID  string
	Version     string
	ProjectName string

	// PackageName overrides the package derived from groupId and artifactId.
	PackageName string

	// Kind and Stack select the application type from the catalog.
	Kind  string
	Stack catalog.ApplicationType

	NoGit   bool
	Verbose bool

	// OutputDir is the parent directory of the project folder.
	OutputDir string
}

// Identifiers are the derived names handed to the templates.
type Identifiers struct {
	GroupID                       string
	ArtifactID                    string
	Version                       string
	ProjectName                   string
	ProgramNameUsedInPrintVersion string
	PackageName                   string
	PackageFolderPathName         string
	Packaging                     string
}

// Derive fills in every name the templates need, applying defaults.
func (p Parameters) Derive() Identifiers {
	version := p.Version
	if strings.TrimSpace(version) == "" {
		version = DefaultVersion
	}

	name := EffectiveProjectName(p.ProjectName, p.ArtifactID)

	pkg := p.PackageName
	if strings.TrimSpace(pkg) == "" {
		pkg = DefaultPackageName(p.GroupID, p.ArtifactID)
	}

	packaging := p.Stack.Packaging
	if packaging == "" {
		packaging = catalog.DefaultPackaging
	}

	return Identifiers{
		GroupID:                       p.GroupID,
		ArtifactID:                    p.ArtifactID,
		Version:                       version,
		ProjectName:                   name,
		ProgramNameUsedInPrintVersion: ProgramName(name),
		PackageName:                   pkg,
		PackageFolderPathName:         PackageFolderPath(pkg),
		Packaging:                     packaging,
	}
}

// ProjectFolder returns the project root: <OutputDir>/<project name>.
func (p Parameters) ProjectFolder() string {
	dir := p.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, EffectiveProjectName(p.ProjectName, p.ArtifactID))
}

// EffectiveProjectName returns projectName, or artifactID when it is blank.
func EffectiveProjectName(projectName, artifactID string) string {
	if strings.TrimSpace(projectName) == "" {
		return artifactID
	}
	return projectName
}

// DefaultPackageName joins groupId and artifactId with a dot and removes
// '-' and '_'.
func DefaultPackageName(groupID, artifactID string) string {
	return stripSeparators(groupID + "." + artifactID)
}

// PackageFolderPath turns a package name into a slash separated path.
func PackageFolderPath(packageName string) string {
	return strings.ReplaceAll(packageName, ".", "/")
}

// ProgramName turns a project name into the display name printed by the
// generated application: '-' and '_' become spaces and every word starts
// with an upper case letter.
func ProgramName(projectName string) string {
	r := strings.NewReplacer("-", " ", "_", " ")
	words := strings.Split(r.Replace(projectName), " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(first)) + s[size:]
}

func stripSeparators(s string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}
