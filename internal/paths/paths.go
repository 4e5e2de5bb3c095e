// Package paths resolves where contactdesk keeps its config file and its
// contact data.
//
// Both directories follow the same precedence: command-line flag, then
// environment variable, then a default. The data directory also honours the
// data_dir key of config.yaml, which sits between the flag and the
// environment.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user platform directories.
const AppName = "contactdesk"

// ConfigFileName is the config file inside the config directory.
const ConfigFileName = "config.yaml"

// DefaultDataDirName is the working-directory-relative data directory used
// when nothing else is configured.
const DefaultDataDirName = ".contactdesk-db"

// Environment overrides.
const (
	EnvConfigDir = "CONTACTDESK_CONFIG_DIR"
	EnvDataDir   = "CONTACTDESK_DATA_DIR"
)

// platformDir is swapped in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// xdgBase returns the XDG base directory named by env, or home/fallback.
func xdgBase(env string, fallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		return platformDir.userConfigDir()
	}
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// DefaultConfigDir is $XDG_CONFIG_HOME/contactdesk on Linux (falling back to
// ~/.config) and the OS user config directory elsewhere.
func DefaultConfigDir() (string, error) {
	base, err := xdgBase("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DefaultDataDir is $XDG_DATA_HOME/contactdesk on Linux (falling back to
// ~/.local/share) and the OS user config directory elsewhere.
func DefaultDataDir() (string, error) {
	base, err := xdgBase("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// ResolveConfigDir applies flag > CONTACTDESK_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	return firstAbs(DefaultConfigDir, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir applies flag > config.yaml value > CONTACTDESK_DATA_DIR >
// ./.contactdesk-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	return firstAbs(cwdDataDir, flag, configValue, os.Getenv(EnvDataDir))
}

// ConfigFile returns the config file path inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

func cwdDataDir() (string, error) {
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// firstAbs returns the first non-empty candidate made absolute, or the
// fallback when every candidate is empty.
func firstAbs(fallback func() (string, error), candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return fallback()
}
