// Package config loads user configuration for od-draw.
//
// Configuration lives in ~/.od-draw.toml and overrides a table of platform
// defaults (viewer commands differ per operating system). A missing file
// is not an error; a malformed one is.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/odtools/oddraw/pkg/errors"
)

// FileName is the configuration file looked up in the home directory.
const FileName = ".od-draw.toml"

// Config holds the effective settings after merging user overrides over
// platform defaults.
type Config struct {
	DefaultBackend string `toml:"default_backend"`
	DefaultWidth   int    `toml:"default_width"`
	DefaultHeight  int    `toml:"default_height"`
	SVGViewer      string `toml:"svg_viewer"`
	PNGViewer      string `toml:"png_viewer"`
	DrawioViewer   string `toml:"drawio_viewer"`
}

// Defaults returns the built-in configuration for the current platform.
func Defaults() Config {
	viewer := platformViewer(runtime.GOOS)
	return Config{
		DefaultBackend: "svg",
		DefaultWidth:   800,
		DefaultHeight:  600,
		SVGViewer:      viewer,
		PNGViewer:      viewer,
		DrawioViewer:   viewer,
	}
}

func platformViewer(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "start"
	default:
		return "xdg-open"
	}
}

// Load reads the user's configuration file from the home directory,
// merged over [Defaults]. A missing file yields the defaults unchanged.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Defaults(), nil
	}
	return LoadFrom(filepath.Join(home, FileName))
}

// LoadFrom reads configuration from an explicit path, merged over
// [Defaults]. A missing file yields the defaults; a file that fails to
// parse is an error.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// ViewerFor returns the viewer command configured for a backend name.
func (c Config) ViewerFor(backend string) string {
	switch backend {
	case "png":
		return c.PNGViewer
	case "drawio":
		return c.DrawioViewer
	default:
		return c.SVGViewer
	}
}
