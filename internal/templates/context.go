package templates

import "sort"

// Rendering context keys shared by the generator and the templates.
const (
	KeyGroupID                       = "groupId"
	KeyArtifactID                    = "artifactId"
	KeyVersionOfApplication          = "versionOfApplication"
	KeyProjectName                   = "projectName"
	KeyProgramNameUsedInPrintVersion = "programNameUsedInPrintVersion"
	KeyPackageName                   = "packageName"
	KeyPackageFolderPathName         = "packageFolderPathName"
	KeyPackaging                     = "packaging"
	KeyDependencies                  = "dependencies"
	KeyProperties                    = "properties"
	KeyPlugins                       = "plugins"
)

// Context is the key/value set a template is merged against.
type Context struct {
	values map[string]string
}

// NewContext creates an empty rendering context.
func NewContext() *Context {
	return &Context{values: make(map[string]string)}
}

// Put sets key to value, replacing any previous value.
func (c *Context) Put(key, value string) {
	c.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (c *Context) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns the context keys, sorted.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
