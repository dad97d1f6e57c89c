// Package templates provides the embedded project templates and the
// ${key} merge engine that renders them.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed files/*.vtl
var embedded embed.FS

// Template identifiers.
const (
	PomTemplate             = "pom.vtl"
	ApplicationTemplate     = "Application.vtl"
	ApplicationTestTemplate = "ApplicationTest.vtl"
	ReadmeTemplate          = "README.vtl"
	GitignoreTemplate       = "gitignore.vtl"
	WebTemplate             = "web.vtl"
	IndexTemplate           = "index.vtl"
	StrutsConfigTemplate    = "struts-config.vtl"
)

// BuiltinFS returns the built-in templates rooted so that template
// identifiers are plain file names.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// files/ is embedded at compile time
		panic(err)
	}
	return sub
}

// BuiltinNames returns the identifiers of every built-in template.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(BuiltinFS(), ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
