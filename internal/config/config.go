// Package config provides configuration loading and management.
package config

// Config holds user defaults read from the config file and environment.
// Loaded from ~/.fresh-maven-project/config.yaml and validated against an
// embedded CUE schema.
type Config struct {
	// GroupID is offered when -g is not given.
	// Env: FMP_GROUP_ID
	GroupID string `mapstructure:"groupId" json:"groupId,omitempty"`

	// Version is the project version used when -vp is not given.
	// Env: FMP_VERSION, Default: 1.0.0-SNAPSHOT
	Version string `mapstructure:"version" json:"version,omitempty"`

	// Kind is the application kind used outside interactive mode.
	// Env: FMP_KIND, Default: command-line-application
	Kind string `mapstructure:"kind" json:"kind,omitempty"`

	// Stack is the stack used outside interactive mode.
	// Env: FMP_STACK, Default: the first stack of Kind
	Stack string `mapstructure:"stack" json:"stack,omitempty"`

	// NoGit disables README.md and .gitignore.
	// Env: FMP_NO_GIT
	NoGit bool `mapstructure:"noGit" json:"noGit,omitempty"`

	// OutputDir is the parent of generated project folders.
	// Env: FMP_OUTPUT_DIR, Default: current directory
	OutputDir string `mapstructure:"outputDir" json:"outputDir,omitempty"`

	// Catalog is a YAML catalog merged over the built-in one.
	// Env: FMP_CATALOG
	Catalog string `mapstructure:"catalog" json:"catalog,omitempty"`

	// Templates is a directory whose templates shadow the built-in ones.
	// Env: FMP_TEMPLATES
	Templates string `mapstructure:"templates" json:"templates,omitempty"`
}
