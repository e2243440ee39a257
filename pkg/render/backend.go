// Package render maps shapes onto concrete output formats.
//
// Each backend implements the same two capabilities: Render writes shapes
// to a file, Show renders to a temporary file and launches the configured
// platform viewer. Backends map shapes to output primitives directly and
// unconditionally; there is no layout computation.
package render

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/odtools/oddraw/pkg/errors"
	"github.com/odtools/oddraw/pkg/shapes"
)

// Backend names.
const (
	BackendSVG    = "svg"
	BackendPNG    = "png"
	BackendDrawio = "drawio"
)

// Options carries rendering parameters shared by all backends.
type Options struct {
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Viewer string // viewer command for Show; empty means platform default
}

// Backend renders a shape list to a file or displays it.
type Backend interface {
	// Render writes the shapes to path, creating parent directories as
	// needed.
	Render(sh []shapes.Shape, path string, opts Options) error
	// Show renders to a temporary file and opens it in the viewer named
	// by opts.Viewer.
	Show(sh []shapes.Shape, opts Options) error
}

// ForName returns the backend registered under name.
func ForName(name string) (Backend, error) {
	switch name {
	case BackendSVG:
		return SVG{}, nil
	case BackendPNG:
		return PNG{}, nil
	case BackendDrawio:
		return Drawio{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidBackend, "unknown backend %q (valid: svg, png, drawio)", name)
	}
}

// ForPath picks a backend from the extension of an output path.
// Unrecognized extensions fall back to SVG.
func ForPath(path string) Backend {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG{}
	case ".drawio":
		return Drawio{}
	default:
		return SVG{}
	}
}

// ensureDir creates the parent directory of path if it does not exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create directory %s", dir)
	}
	return nil
}

// launchViewer opens path with the given viewer command.
func launchViewer(viewer, path string) error {
	if viewer == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "no viewer configured")
	}
	cmd := exec.Command(viewer, path)
	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open %s with %s", path, viewer)
	}
	return nil
}

// tempFile creates a temporary file with the given extension and returns
// its path. The caller owns the file.
func tempFile(ext string) (string, error) {
	f, err := os.CreateTemp("", "oddraw-*"+ext)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create temp file")
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "close temp file")
	}
	return path, nil
}
