// Package config loads the optional flit.yaml that configures the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/engine"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/scene"
	"github.com/go-drift/flit/pkg/theme"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "flit.yaml"

// Default frame size when flit.yaml does not set one.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Config represents the optional flit.yaml configuration.
type Config struct {
	Version   string         `yaml:"version,omitempty"`
	Frame     FrameConfig    `yaml:"frame"`
	ThemeFile string         `yaml:"theme_file,omitempty"`
	Theme     theme.Document `yaml:"theme"`
	Scene     string         `yaml:"scene,omitempty"`
}

// FrameConfig sets the viewport and the root origin.
type FrameConfig struct {
	Width  float64       `yaml:"width,omitempty"`
	Height float64       `yaml:"height,omitempty"`
	Margin *MarginConfig `yaml:"margin,omitempty"`
}

// MarginConfig is the root origin.
type MarginConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root      string
	Viewport  graphics.Size
	Margin    graphics.Offset
	Theme     theme.Theme
	ScenePath string
}

// LoadOptional reads flit.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := theme.CheckVersion(strings.TrimSpace(cfg.Version)); err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads flit.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	viewport := graphics.Size{Width: cfg.Frame.Width, Height: cfg.Frame.Height}
	if viewport.Width == 0 {
		viewport.Width = DefaultWidth
	}
	if viewport.Height == 0 {
		viewport.Height = DefaultHeight
	}
	if viewport.Width < 0 || viewport.Height < 0 {
		return nil, fmt.Errorf("frame size %s must not be negative", viewport)
	}

	margin := engine.DefaultMargin
	if m := cfg.Frame.Margin; m != nil {
		margin = graphics.Offset{X: m.X, Y: m.Y}
	}

	base := theme.Default()
	if cfg.ThemeFile != "" {
		if base, err = theme.Load(resolvePath(dir, cfg.ThemeFile)); err != nil {
			return nil, err
		}
	}
	th, err := cfg.Theme.Apply(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}

	var scenePath string
	if s := strings.TrimSpace(cfg.Scene); s != "" {
		scenePath = resolvePath(dir, s)
	}

	return &Resolved{
		Root:      dir,
		Viewport:  viewport,
		Margin:    margin,
		Theme:     th,
		ScenePath: scenePath,
	}, nil
}

// FindProjectRoot walks up from the current directory to find flit.yaml.
// Without one the current directory is the root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// LoadScene returns the configured scene, or the built-in demo when none
// is set.
func (r *Resolved) LoadScene() (core.Widget, error) {
	if r.ScenePath == "" {
		return scene.Demo(), nil
	}
	return scene.Load(r.ScenePath)
}

// DriverOptions returns the engine options for the resolved margin and
// theme.
func (r *Resolved) DriverOptions() []engine.Option {
	return []engine.Option{engine.WithMargin(r.Margin), engine.WithTheme(r.Theme)}
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
