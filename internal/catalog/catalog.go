// Package catalog provides the application kinds, their technology stacks
// and the named actions the stacks are assembled from.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/spf13/afero"

	"github.com/freshmaven/cli/internal/action"
	oerrors "github.com/freshmaven/cli/internal/errors"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Application kinds of the built-in catalog.
const (
	KindCommandLineApplication = "command-line-application"
	KindLibrary                = "library"
	KindJ2EE                   = "j2ee"
)

// DefaultKind is used when no kind is given on the command line or in config.
const DefaultKind = KindCommandLineApplication

// DefaultPackaging is the Maven packaging of stacks that do not set one.
const DefaultPackaging = "jar"

// ApplicationType is one selectable technology stack.
type ApplicationType struct {
	Name        string
	Description string
	Packaging   string

	// Actions are action names in declaration order. Names may repeat.
	Actions []string
}

// Kind groups the stacks offered for one kind of application.
type Kind struct {
	Name        string
	Description string
	Stacks      []ApplicationType
}

// Catalog holds the kinds, stacks and actions available for generation.
// It is immutable once loaded.
type Catalog struct {
	kinds   []Kind
	actions *action.Repository
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	return Load(nil, "")
}

// Load builds the catalog from the built-in document and, when path is not
// empty, a user document read from fsys merged on top of it.
// User actions and stacks replace built-in ones of the same name; unknown
// kinds and stacks are appended.
func Load(fsys afero.Fs, path string) (*Catalog, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	base, err := parse(v, "builtin", builtinCatalog)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, oerrors.NewIOError("cannot read catalog", path, err)
		}
		user, err := parse(v, path, data)
		if err != nil {
			return nil, err
		}
		base = merge(base, user)
	}

	return build(base)
}

func parse(v *validator, name string, data []byte) (*document, error) {
	doc, err := decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oerrors.ErrValidation, err)
	}
	if err := v.validate(name, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", oerrors.ErrValidation, err)
	}
	return doc, nil
}

// merge overlays user on base and returns the combined document.
func merge(base, user *document) *document {
	out := &document{
		Actions: append([]actionDoc(nil), base.Actions...),
		Kinds:   make([]kindDoc, 0, len(base.Kinds)),
	}
	for _, k := range base.Kinds {
		k.Stacks = append([]stackDoc(nil), k.Stacks...)
		out.Kinds = append(out.Kinds, k)
	}

	for _, a := range user.Actions {
		replaced := false
		for i := range out.Actions {
			if out.Actions[i].Name == a.Name {
				out.Actions[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			out.Actions = append(out.Actions, a)
		}
	}

	for _, uk := range user.Kinds {
		idx := -1
		for i := range out.Kinds {
			if out.Kinds[i].Name == uk.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			out.Kinds = append(out.Kinds, uk)
			continue
		}

		k := &out.Kinds[idx]
		if uk.Description != "" {
			k.Description = uk.Description
		}
		for _, us := range uk.Stacks {
			replaced := false
			for i := range k.Stacks {
				if k.Stacks[i].Name == us.Name {
					k.Stacks[i] = us
					replaced = true
					break
				}
			}
			if !replaced {
				k.Stacks = append(k.Stacks, us)
			}
		}
	}

	return out
}

// build converts a validated document into a Catalog and checks that
// every action a stack names exists.
func build(doc *document) (*Catalog, error) {
	actions := make(map[string]action.Action, len(doc.Actions))
	for _, d := range doc.Actions {
		a, err := d.toAction()
		if err != nil {
			return nil, fmt.Errorf("%w: action %q: %w", oerrors.ErrValidation, d.Name, err)
		}
		actions[d.Name] = a
	}
	repo := action.NewRepository(actions)

	seenStacks := make(map[string]string)
	kinds := make([]Kind, 0, len(doc.Kinds))
	for _, kd := range doc.Kinds {
		kind := Kind{Name: kd.Name, Description: kd.Description}
		for _, sd := range kd.Stacks {
			if other, ok := seenStacks[sd.Name]; ok {
				return nil, fmt.Errorf("%w: stack %q is declared by kinds %q and %q",
					oerrors.ErrValidation, sd.Name, other, kd.Name)
			}
			seenStacks[sd.Name] = kd.Name

			for _, name := range sd.Actions {
				if _, err := repo.Get(name); err != nil {
					return nil, fmt.Errorf("stack %s: %w", sd.Name, err)
				}
			}

			packaging := sd.Packaging
			if packaging == "" {
				packaging = DefaultPackaging
			}
			kind.Stacks = append(kind.Stacks, ApplicationType{
				Name:        sd.Name,
				Description: sd.Description,
				Packaging:   packaging,
				Actions:     append([]string(nil), sd.Actions...),
			})
		}
		kinds = append(kinds, kind)
	}

	return &Catalog{kinds: kinds, actions: repo}, nil
}

// Actions returns the action repository of the catalog.
func (c *Catalog) Actions() *action.Repository {
	return c.actions
}

// Kinds returns the application kinds in catalog order.
func (c *Catalog) Kinds() []Kind {
	return append([]Kind(nil), c.kinds...)
}

// Kind returns the kind registered under name.
func (c *Catalog) Kind(name string) (Kind, error) {
	for _, k := range c.kinds {
		if k.Name == name {
			return k, nil
		}
	}
	return Kind{}, oerrors.NewNotFoundError(
		fmt.Sprintf("unknown application kind %q", name),
		"",
		"run 'fresh-maven-project stacks' to list the available kinds",
	)
}

// StackOptions returns the stacks of kind in catalog order.
// An unknown kind yields an empty list.
func (c *Catalog) StackOptions(kind string) []ApplicationType {
	for _, k := range c.kinds {
		if k.Name == kind {
			return append([]ApplicationType(nil), k.Stacks...)
		}
	}
	return []ApplicationType{}
}

// FindStack returns the stack named name together with its kind.
func (c *Catalog) FindStack(name string) (ApplicationType, Kind, error) {
	for _, k := range c.kinds {
		for _, s := range k.Stacks {
			if s.Name == name {
				return s, k, nil
			}
		}
	}
	return ApplicationType{}, Kind{}, oerrors.NewNotFoundError(
		fmt.Sprintf("unknown stack %q", name),
		"",
		"run 'fresh-maven-project stacks' to list the available stacks",
	)
}

// DefaultStack returns the first stack of kind.
func (c *Catalog) DefaultStack(kind string) (ApplicationType, error) {
	stacks := c.StackOptions(kind)
	if len(stacks) == 0 {
		return ApplicationType{}, oerrors.NewNotFoundError(
			fmt.Sprintf("application kind %q has no stacks", kind),
			"",
			"",
		)
	}
	return stacks[0], nil
}

// ActionList resolves the action names of t against the catalog.
func (c *Catalog) ActionList(t ApplicationType) (action.List, error) {
	return c.actions.Resolve(t.Actions)
}
