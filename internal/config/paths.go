package config

import (
	"os"
	"path/filepath"
)

// Root returns the per-user smanga directory, which holds both the config
// file and the catalog document.
func Root() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "smanga")
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "smanga")
	}

	// Linux/macOS default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "smanga")
}

func File() string {
	return filepath.Join(Root(), "config.yaml")
}

// CatalogPath is the default location of the catalog document. The config
// file's catalog key overrides it.
func CatalogPath() string {
	return filepath.Join(Root(), "catalog.json")
}
