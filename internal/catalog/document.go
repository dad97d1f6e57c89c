package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/freshmaven/cli/internal/action"
)

// Indentation applied to fragment lines so they line up inside pom.xml.
const (
	dependencyIndent = 8
	propertyIndent   = 8
	pluginIndent     = 12
)

// document is the on-disk shape of a catalog file.
type document struct {
	Actions []actionDoc `yaml:"actions,omitempty" json:"actions,omitempty"`
	Kinds   []kindDoc   `yaml:"kinds,omitempty" json:"kinds,omitempty"`
}

// actionDoc sets exactly one of its action fields. Name is only used on
// top-level entries.
type actionDoc struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Folder     *folderDoc  `yaml:"folder,omitempty" json:"folder,omitempty"`
	File       *fileDoc    `yaml:"file,omitempty" json:"file,omitempty"`
	Dependency string      `yaml:"dependency,omitempty" json:"dependency,omitempty"`
	Property   string      `yaml:"property,omitempty" json:"property,omitempty"`
	Plugin     string      `yaml:"plugin,omitempty" json:"plugin,omitempty"`
	Actions    []actionDoc `yaml:"actions,omitempty" json:"actions,omitempty"`
}

type folderDoc struct {
	Template string `yaml:"template" json:"template"`
	Property string `yaml:"property" json:"property"`
}

type fileDoc struct {
	Source   string `yaml:"source" json:"source"`
	Target   string `yaml:"target" json:"target"`
	Property string `yaml:"property" json:"property"`
}

type kindDoc struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Stacks      []stackDoc `yaml:"stacks,omitempty" json:"stacks,omitempty"`
}

type stackDoc struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Packaging   string   `yaml:"packaging,omitempty" json:"packaging,omitempty"`
	Actions     []string `yaml:"actions" json:"actions"`
}

// decode parses a catalog document. Unknown fields are rejected.
func decode(name string, data []byte) (*document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", name, err)
	}
	return &doc, nil
}

// toAction converts a document entry into an action value.
func (d actionDoc) toAction() (action.Action, error) {
	var (
		out action.Action
		set int
	)

	if d.Folder != nil {
		out = action.FolderPath{Template: d.Folder.Template, Property: d.Folder.Property}
		set++
	}
	if d.File != nil {
		out = action.File{Source: d.File.Source, Target: d.File.Target, Property: d.File.Property}
		set++
	}
	if d.Dependency != "" {
		out = action.PomDependency{Content: indent(d.Dependency, dependencyIndent)}
		set++
	}
	if d.Property != "" {
		out = action.PomProperty{Content: indent(d.Property, propertyIndent)}
		set++
	}
	if d.Plugin != "" {
		out = action.PomPlugin{Content: indent(d.Plugin, pluginIndent)}
		set++
	}
	if d.Actions != nil {
		list := action.List{Actions: make([]action.Action, 0, len(d.Actions))}
		for i, child := range d.Actions {
			a, err := child.toAction()
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			list.Actions = append(list.Actions, a)
		}
		out = list
		set++
	}

	if set != 1 {
		return nil, fmt.Errorf("action must set exactly one of folder, file, dependency, property, plugin or actions (got %d)", set)
	}
	return out, nil
}

// indent prefixes every non-empty line of s with n spaces and makes sure
// the result ends with a newline.
func indent(s string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")

	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
