package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Paintersrp/notes/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists creates an empty config file under home on first run.
func EnsureConfigExists(homeDir string) error {
	return EnsureConfigFile(GetConfigPath(homeDir))
}

// EnsureConfigFile creates an empty config file at path if none exists.
func EnsureConfigFile(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	if _, err := LoadFile(configPath); err != nil {
		return &ConfigInitError{msg: fmt.Sprintf("failed to load config: %v", err)}
	}

	return nil
}
