package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultRemote is used when the configuration file names no remote.
const DefaultRemote = "origin"

// Configuration represents the YAML configuration file structure
type Configuration struct {
	// Remote is the remote to fetch from and push to.
	Remote string `yaml:"remote"`
	// ProtectedBranches are extra branch names exempt from automated
	// deletion, in addition to the current branch, main and master.
	ProtectedBranches []string `yaml:"protected_branches"`
}

// ReadConfig reads and parses the configuration file. A missing file is
// not an error; defaults apply.
func ReadConfig(configPath string) (*Configuration, error) {
	config := &Configuration{Remote: DefaultRemote}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if config.Remote == "" {
		config.Remote = DefaultRemote
	}
	return config, nil
}
