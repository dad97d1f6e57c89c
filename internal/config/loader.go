package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix prefixes every environment variable read by the tool.
const envPrefix = "FMP"

// envNames maps config keys to their environment variables.
var envNames = map[string]string{
	"groupId":   "FMP_GROUP_ID",
	"version":   "FMP_VERSION",
	"kind":      "FMP_KIND",
	"stack":     "FMP_STACK",
	"noGit":     "FMP_NO_GIT",
	"outputDir": "FMP_OUTPUT_DIR",
	"catalog":   "FMP_CATALOG",
	"templates": "FMP_TEMPLATES",
}

// Loader reads configuration from a YAML file and the environment.
type Loader struct {
	// v merges the file and the environment.
	v *viper.Viper

	// file holds the config file alone.
	file *viper.Viper
}

// NewLoader creates a configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envNames {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v, file: viper.New()}
}

// Load reads configFile, when it exists, and overlays environment
// variables. A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		path, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(path)
		l.v.SetConfigType("yaml")

		l.file.SetConfigFile(path)
		l.file.SetConfigType("yaml")

		for _, v := range []*viper.Viper{l.v, l.file} {
			if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}

// Source reports where the loaded value of key came from:
// SourceEnv, SourceConfig or SourceDefault when neither set it.
func (l *Loader) Source(key string) ConfigSource {
	if env, ok := envNames[key]; ok {
		if _, set := os.LookupEnv(env); set {
			return SourceEnv
		}
	}
	if l.file.IsSet(key) {
		return SourceConfig
	}
	return SourceDefault
}

// ConfigValue returns the raw value of key in the config file, if any.
func (l *Loader) ConfigValue(key string) (string, bool) {
	if !l.file.IsSet(key) {
		return "", false
	}
	return l.file.GetString(key), true
}
