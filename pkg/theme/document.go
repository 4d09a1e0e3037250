package theme

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flit/pkg/graphics"
)

// SupportedMajor is the document major version this package reads.
const SupportedMajor = "v1"

// Document is the YAML form of a Theme. Empty fields keep the value of the
// base theme they are applied to.
//
//	version: v1.0.0
//	background: "#323232"
//	container: "#646464ff"
//	text: "#ffffff"
//	font_size: 24
type Document struct {
	Version    string `yaml:"version,omitempty"`
	Background string `yaml:"background,omitempty"`
	Container  string `yaml:"container,omitempty"`
	Text       string `yaml:"text,omitempty"`
	FontSize   int    `yaml:"font_size,omitempty"`
}

// CheckVersion validates a document version string. An empty version is
// accepted and means the current major.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid version %q: want semantic version like %s.0.0", version, SupportedMajor)
	}
	if major := semver.Major(version); major != SupportedMajor {
		return fmt.Errorf("unsupported version %s: only %s documents are supported", version, SupportedMajor)
	}
	return nil
}

// Apply overlays the document on base and validates the result.
func (d Document) Apply(base Theme) (Theme, error) {
	if err := CheckVersion(d.Version); err != nil {
		return Theme{}, err
	}
	out := base
	for _, field := range []struct {
		name string
		raw  string
		dst  *graphics.Color
	}{
		{"background", d.Background, &out.BackgroundColor},
		{"container", d.Container, &out.ContainerColor},
		{"text", d.Text, &out.TextColor},
	} {
		if field.raw == "" {
			continue
		}
		c, err := graphics.ParseColor(field.raw)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", field.name, err)
		}
		*field.dst = c
	}
	if d.FontSize != 0 {
		out.FontSize = d.FontSize
	}
	if err := out.Validate(); err != nil {
		return Theme{}, err
	}
	return out, nil
}

// DocumentOf returns the document form of t.
func DocumentOf(t Theme) Document {
	return Document{
		Version:    SupportedMajor + ".0.0",
		Background: t.BackgroundColor.Hex(),
		Container:  t.ContainerColor.Hex(),
		Text:       t.TextColor.Hex(),
		FontSize:   t.FontSize,
	}
}

// Parse decodes a YAML theme document on top of Default().
func Parse(data []byte) (Theme, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	return doc.Apply(Default())
}

// Load reads and parses a YAML theme file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes t as a YAML theme document.
func Marshal(t Theme) ([]byte, error) {
	return yaml.Marshal(DocumentOf(t))
}
