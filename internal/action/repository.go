package action

import (
	"fmt"
	"sort"

	oerrors "github.com/freshmaven/cli/internal/errors"
)

// Repository maps symbolic action names (e.g. "CLA", "unit test 5") to actions.
// It is filled once by NewRepository and is read-only afterwards.
type Repository struct {
	actions map[string]Action
}

// NewRepository creates a repository holding a copy of the given actions.
func NewRepository(actions map[string]Action) *Repository {
	m := make(map[string]Action, len(actions))
	for name, a := range actions {
		m[name] = a
	}
	return &Repository{actions: m}
}

// Get returns the action registered under name.
// A missing name is a catalog configuration error, never a user input error.
func (r *Repository) Get(name string) (Action, error) {
	a, ok := r.actions[name]
	if !ok {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("action %q", name))
	}
	return a, nil
}

// Resolve looks up every name in order and returns the actions as one list.
// Names may repeat; each occurrence contributes its action again.
func (r *Repository) Resolve(names []string) (List, error) {
	list := List{Actions: make([]Action, 0, len(names))}
	for _, name := range names {
		a, err := r.Get(name)
		if err != nil {
			return List{}, err
		}
		list.Actions = append(list.Actions, a)
	}
	return list, nil
}

// Names returns the registered action names, sorted.
func (r *Repository) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
