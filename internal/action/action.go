// Package action provides the declarative units of work a project skeleton is built from.
package action

import "fmt"

// Kind identifies an action variant.
type Kind string

const (
	// KindFolderPath creates a folder whose path is a template over other properties.
	KindFolderPath Kind = "folder"

	// KindFile renders a template into a file.
	KindFile Kind = "file"

	// KindPomDependency contributes a <dependency> fragment to pom.xml.
	KindPomDependency Kind = "dependency"

	// KindPomProperty contributes a <properties> entry to pom.xml.
	KindPomProperty Kind = "property"

	// KindPomPlugin contributes a <plugin> fragment to pom.xml.
	KindPomPlugin Kind = "plugin"

	// KindList groups other actions.
	KindList Kind = "list"
)

// Action is a declarative unit of generation work.
// The set of implementations is closed: FolderPath, File, PomDependency,
// PomProperty, PomPlugin and List.
type Action interface {
	// Kind returns the variant of the action.
	Kind() Kind

	sealed()
}

// FolderPath defines a folder property. Template may reference other
// properties as ${name}.
type FolderPath struct {
	Template string
	Property string
}

// File renders Source into Target inside the folder named by Property.
type File struct {
	Source   string
	Target   string
	Property string
}

// PomDependency is a literal <dependency> fragment.
type PomDependency struct {
	Content string
}

// PomProperty is a literal properties entry.
type PomProperty struct {
	Content string
}

// PomPlugin is a <plugin> fragment. It is merged once against the
// rendering context before it reaches pom.xml.
type PomPlugin struct {
	Content string
}

// List is an ordered group of actions.
type List struct {
	Actions []Action
}

func (FolderPath) Kind() Kind    { return KindFolderPath }
func (File) Kind() Kind          { return KindFile }
func (PomDependency) Kind() Kind { return KindPomDependency }
func (PomProperty) Kind() Kind   { return KindPomProperty }
func (PomPlugin) Kind() Kind     { return KindPomPlugin }
func (List) Kind() Kind          { return KindList }

func (FolderPath) sealed()    {}
func (File) sealed()          {}
func (PomDependency) sealed() {}
func (PomProperty) sealed()   {}
func (PomPlugin) sealed()     {}
func (List) sealed()          {}

// String returns a short description used in verbose output.
func (f FolderPath) String() string {
	return fmt.Sprintf("[folderPath: %s, propertyName: %s]", f.Template, f.Property)
}

// String returns a short description used in verbose output.
func (f File) String() string {
	return fmt.Sprintf("[source: %s, target: %s, propertyName: %s]", f.Source, f.Target, f.Property)
}

// NewList builds a List from the given actions.
func NewList(actions ...Action) List {
	return List{Actions: actions}
}

// Flatten expands nested lists depth-first and returns the leaf actions in
// declaration order.
func Flatten(actions ...Action) []Action {
	var out []Action
	for _, a := range actions {
		switch v := a.(type) {
		case List:
			out = append(out, Flatten(v.Actions...)...)
		case nil:
			continue
		default:
			out = append(out, v)
		}
	}
	return out
}

// FolderPaths returns the FolderPath leaves of actions in order.
func FolderPaths(actions ...Action) []FolderPath {
	var out []FolderPath
	for _, a := range Flatten(actions...) {
		if f, ok := a.(FolderPath); ok {
			out = append(out, f)
		}
	}
	return out
}

// Files returns the File leaves of actions in order.
func Files(actions ...Action) []File {
	var out []File
	for _, a := range Flatten(actions...) {
		if f, ok := a.(File); ok {
			out = append(out, f)
		}
	}
	return out
}

// Fragments concatenates the content of every pom fragment of the given kind,
// in declaration order, without separators or deduplication.
// Kinds other than the three pom fragment kinds yield an empty string.
func Fragments(kind Kind, actions ...Action) string {
	var content string
	for _, a := range Flatten(actions...) {
		switch v := a.(type) {
		case PomDependency:
			if kind == KindPomDependency {
				content += v.Content
			}
		case PomProperty:
			if kind == KindPomProperty {
				content += v.Content
			}
		case PomPlugin:
			if kind == KindPomPlugin {
				content += v.Content
			}
		case FolderPath, File:
			// not a pom fragment
		default:
			panic(fmt.Sprintf("action: unhandled action variant %T", v))
		}
	}
	return content
}
