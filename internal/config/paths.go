package config

import (
	"errors"
	"os"
	"path/filepath"
)

// CandidatePaths builds the JSON/YAML/TOML config file candidates kong
// should search, in priority order. An explicit --config path always wins
// and is routed to the loader matching its extension; otherwise joyemu
// looks in the working directory, then $XDG_CONFIG_HOME (or ~/.config),
// then /etc/joyemu.
func CandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	add(&jsonPaths, filepath.Join(wd, "joyemu.json"))
	add(&yamlPaths, filepath.Join(wd, "joyemu.yaml"))
	add(&tomlPaths, filepath.Join(wd, "joyemu.toml"))

	if dir, err := defaultConfigDir(); err == nil {
		add(&jsonPaths, filepath.Join(dir, "config.json"))
		add(&yamlPaths, filepath.Join(dir, "config.yaml"))
		add(&tomlPaths, filepath.Join(dir, "config.toml"))
	}

	add(&jsonPaths, "/etc/joyemu/config.json")
	add(&yamlPaths, "/etc/joyemu/config.yaml")
	add(&tomlPaths, "/etc/joyemu/config.toml")
	return
}

func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "joyemu"), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "joyemu"), nil
	}
	return "", errors.New("HOME not set")
}
