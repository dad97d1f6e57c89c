package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/freshmaven/cli/internal/action"
	"github.com/freshmaven/cli/internal/templates"
)

// placeholderRegex matches ${name} references in a folder template.
var placeholderRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// references returns the keys template refers to, in order of appearance.
func references(template string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(template, -1)
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, strings.TrimSpace(m[1]))
	}
	return keys
}

// diagnosis explains why folder properties could not be resolved.
type diagnosis struct {
	// pending lists the properties still unresolved, sorted.
	pending []string

	// cycles lists dependency cycles as property chains, e.g. [a b a].
	cycles [][]string

	// undefined maps a pending property to keys nothing defines.
	undefined map[string][]string

	// unterminated lists pending properties whose template opens a
	// placeholder it never closes, sorted.
	unterminated []string
}

// diagnose builds the dependency graph among the folder properties that are
// still pending and reports cycles and references to unknown keys.
func diagnose(folders []action.FolderPath, ctx *templates.Context) diagnosis {
	// first definition of every pending property
	defs := make(map[string]action.FolderPath)
	var order []string
	for _, f := range folders {
		if ctx.Has(f.Property) {
			continue
		}
		if _, ok := defs[f.Property]; ok {
			continue
		}
		defs[f.Property] = f
		order = append(order, f.Property)
	}

	d := diagnosis{undefined: make(map[string][]string)}
	edges := make(map[string][]string, len(defs))
	for _, name := range order {
		if unterminated(defs[name].Template) {
			d.unterminated = append(d.unterminated, name)
		}
		for _, ref := range references(defs[name].Template) {
			switch {
			case ctx.Has(ref):
				// already resolved
			case hasKey(defs, ref):
				edges[name] = append(edges[name], ref)
			default:
				d.undefined[name] = append(d.undefined[name], ref)
			}
		}
	}

	d.pending = append([]string(nil), order...)
	sort.Strings(d.pending)
	sort.Strings(d.unterminated)
	d.cycles = findCycles(order, edges)
	return d
}

// unterminated reports whether template has a start tag left over once
// every complete placeholder is removed.
func unterminated(template string) bool {
	return strings.Contains(placeholderRegex.ReplaceAllString(template, ""), templates.StartTag)
}

func hasKey(m map[string]action.FolderPath, key string) bool {
	_, ok := m[key]
	return ok
}

// findCycles runs a depth first search and returns every back edge as a
// closed chain of nodes.
func findCycles(nodes []string, edges map[string][]string) [][]string {
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)
	var stack []string
	var cycles [][]string

	var visit func(n string)
	visit = func(n string) {
		if permanent[n] {
			return
		}
		if temporary[n] {
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == n {
					cycle := append([]string(nil), stack[i:]...)
					cycles = append(cycles, append(cycle, n))
					break
				}
			}
			return
		}

		temporary[n] = true
		stack = append(stack, n)
		for _, dep := range edges[n] {
			visit(dep)
		}
		stack = stack[:len(stack)-1]
		delete(temporary, n)
		permanent[n] = true
	}

	for _, n := range nodes {
		visit(n)
	}
	return cycles
}

// String renders the diagnosis for an error message.
func (d diagnosis) String() string {
	var b strings.Builder
	b.WriteString("pending: ")
	b.WriteString(strings.Join(d.pending, ", "))

	for _, c := range d.cycles {
		b.WriteString("; cycle: ")
		b.WriteString(strings.Join(c, " -> "))
	}

	names := make([]string, 0, len(d.undefined))
	for name := range d.undefined {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		refs := d.undefined[name]
		quoted := make([]string, len(refs))
		for i, r := range refs {
			quoted[i] = fmt.Sprintf("${%s}", r)
		}
		fmt.Fprintf(&b, "; %s refers to undefined %s", name, strings.Join(quoted, ", "))
	}

	for _, name := range d.unterminated {
		fmt.Fprintf(&b, "; %s has an unterminated %s", name, templates.StartTag)
	}
	return b.String()
}
