// Package iofs prepares directories and files used by GNparks.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnparks/pkg/config"
)

// ConfigYAML is the default content of config.yaml.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return HomeDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return WriteConfigError(configPath, err)
	}

	return nil
}
