package config

import (
	"os"
	"strconv"

	"github.com/freshmaven/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one setting after applying precedence.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Resolver applies flag > env > config > default precedence over a
// loaded configuration.
type Resolver struct {
	loader *Loader
	cfg    *Config
	values []ResolvedValue
}

// NewResolver creates a resolver over the values read by loader.
func NewResolver(loader *Loader, cfg *Config) *Resolver {
	return &Resolver{loader: loader, cfg: cfg}
}

// String resolves a string setting. flagSet reports whether the user gave
// the flag; loaded is the value viper merged from env and file.
func (r *Resolver) String(key, flagValue string, flagSet bool, loaded, def string) string {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

	lower := r.loader.Source(key)
	fileValue, inFile := r.loader.ConfigValue(key)

	switch {
	case flagSet:
		rv.Value, rv.Source = flagValue, SourceFlag
		if lower == SourceEnv {
			rv.Shadowed[SourceEnv] = loaded
		}
		if inFile {
			rv.Shadowed[SourceConfig] = fileValue
		}
	case lower == SourceEnv:
		rv.Value, rv.Source = loaded, SourceEnv
		if inFile {
			rv.Shadowed[SourceConfig] = fileValue
		}
	case lower == SourceConfig:
		rv.Value, rv.Source = loaded, SourceConfig
	default:
		rv.Value, rv.Source = def, SourceDefault
	}

	if rv.Value == "" && rv.Source != SourceFlag {
		rv.Value = def
	}

	r.values = append(r.values, rv)
	return rv.Value
}

// Bool resolves a boolean setting with the same precedence as String.
func (r *Resolver) Bool(key string, flagValue, flagSet, loaded, def bool) bool {
	v := r.String(key, strconv.FormatBool(flagValue), flagSet, strconv.FormatBool(loaded), strconv.FormatBool(def))
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Values returns every value resolved so far, in resolution order.
func (r *Resolver) Values() []ResolvedValue {
	return append([]ResolvedValue(nil), r.values...)
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) FMP_CONFIG env, (3) ~/.fresh-maven-project/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	rv := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv("FMP_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return rv, err
	}

	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, SourceFlag
		if envValue != "" {
			rv.Shadowed[SourceEnv] = envValue
		}
		rv.Shadowed[SourceDefault] = paths.ConfigFile
	case envValue != "":
		rv.Value, rv.Source = envValue, SourceEnv
		rv.Shadowed[SourceDefault] = paths.ConfigFile
	default:
		rv.Value, rv.Source = paths.ConfigFile, SourceDefault
	}
	return rv, nil
}

// LogResolvedValues logs each resolved value at [VERBOSE] level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
