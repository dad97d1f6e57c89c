package config

import (
	"os"
	"path/filepath"
)

// homeDirName is the per-user directory below $HOME.
const homeDirName = ".fresh-maven-project"

// Paths contains the standard filesystem paths of the tool.
type Paths struct {
	// ConfigFile is the path to the config file (~/.fresh-maven-project/config.yaml).
	ConfigFile string

	// HomeDir is the tool's home directory (~/.fresh-maven-project).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, homeDirName)
	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~user is not supported
	return path, nil
}
