// Package config loads curlthis' optional TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/curlthis/config.toml (or the
// platform equivalent) and supplies defaults for things the user would
// otherwise pass as flags on every invocation. Flags always take
// precedence over the file, and the file over the built in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the curlthis user configuration.
type Config struct {
	// Scheme used when resolving origin-form targets, defaults to "https".
	Scheme string `toml:"scheme"`

	// Proxy is a default proxy URL to add to every generated command.
	Proxy string `toml:"proxy"`

	// CookieJar is a default cookie jar path to add to every
	// generated command.
	CookieJar string `toml:"cookie_jar"`

	// Plain disables styled rendering by default, as if --plain was
	// always passed.
	Plain bool `toml:"plain"`

	// Clipboard controls whether generated commands are copied to the
	// system clipboard, defaults to true.
	Clipboard bool `toml:"clipboard"`
}

// Default returns the built in configuration, used when no config file
// exists.
func Default() Config {
	return Config{
		Scheme:    "https",
		Clipboard: true,
	}
}

// Load reads the config file at path, falling back to the default
// location if path is empty.
//
// A missing file at the default location is not an error, the defaults
// are returned. A path the user asked for explicitly must exist, a typo
// should not be silently ignored. An unreadable or invalid file is
// always an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			// No resolvable config dir (e.g. $HOME unset), nothing to load
			return cfg, nil
		}

		path = filepath.Join(dir, "curlthis", "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}

		return Default(), fmt.Errorf("could not load config from %s: %w", path, err)
	}

	return cfg, nil
}
