package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 40
)

// FileEntry is one generated path and an optional description.
type FileEntry struct {
	Path        string
	Description string
}

type treeNode struct {
	name        string
	description string
	isDir       bool
	children    map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name, children: map[string]*treeNode{}}
		n.children[name] = c
	}
	return c
}

// sorted returns the children with directories first, then by name.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].isDir != out[j].isDir {
			return out[i].isDir
		}
		return out[i].name < out[j].name
	})
	return out
}

// RenderFileTree renders the files below root as a tree. Paths are relative
// to root and use either separator.
func RenderFileTree(root string, files []FileEntry) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, isDir: true, children: map[string]*treeNode{}}
	for _, f := range files {
		parts := strings.Split(filepath.ToSlash(f.Path), "/")
		cur := top
		for i, part := range parts {
			if part == "" || part == "." {
				continue
			}
			cur = cur.child(part)
			if i < len(parts)-1 {
				cur.isDir = true
			} else {
				cur.description = f.Description
			}
		}
	}

	styles := GetStyles()

	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(root + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, top, "", styles)
	return sb.String()
}

func renderChildren(sb *strings.Builder, node *treeNode, prefix string, styles Styles) {
	children := node.sorted()
	for i, c := range children {
		last := i == len(children)-1

		connector, next := treeEdge, treeVert
		if last {
			connector, next = treeLast, treeSpace
		}

		name := c.name
		if c.isDir {
			name += "/"
		}
		line := prefix + connector + name
		if c.description != "" {
			pad := descriptionColumn - len([]rune(line))
			if pad < 2 {
				pad = 2
			}
			line += strings.Repeat(" ", pad) + styles.Muted.Render(c.description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
		renderChildren(sb, c, prefix+next, styles)
	}
}
