// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory path.
// Uses /var/lib/tsijukebox when running as root, ~/.local/share/tsijukebox otherwise.
func DefaultDataDir() string {
	if os.Geteuid() == 0 {
		return "/var/lib/tsijukebox"
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "share", "tsijukebox")
	}
	return "/var/lib/tsijukebox"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: jukebox-backup.{yml,yaml,toml,json}
// Search paths (in order): current directory, $XDG_CONFIG_HOME/tsijukebox, ~/.config/tsijukebox, /etc/tsijukebox
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}

	v.SetConfigName("jukebox-backup")
	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "tsijukebox"))
	}
	v.AddConfigPath("$HOME/.config/tsijukebox")
	v.AddConfigPath("/etc/tsijukebox")
}
