package intl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest represents the parsed contents of a locales.yml preset file.
type Manifest struct {
	Path    string
	Presets map[string]*NumberFormat
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "locales: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("locales validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type manifestFile struct {
	Presets map[string]*presetSpec `yaml:"presets"`
}

type presetSpec struct {
	Locale            string `yaml:"locale"`
	Style             string `yaml:"style"`
	MinFractionDigits *int   `yaml:"min_fraction_digits"`
	MaxFractionDigits *int   `yaml:"max_fraction_digits"`
	Grouping          *bool  `yaml:"grouping"`
}

// LoadManifest parses locales.yml from disk, returning validated presets.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("locales: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("locales: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("locales: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("locales: %s is empty", absPath)
		}
		return nil, fmt.Errorf("locales: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(raw.Presets); err != nil {
		return nil, err
	}
	tracer().Debugf("loaded %d number-format presets from %s", len(manifest.Presets), absPath)
	return manifest, nil
}

func (f manifestFile) toManifest(path string) *Manifest {
	presets := make(map[string]*NumberFormat, len(f.Presets))
	for name, spec := range f.Presets {
		if spec == nil {
			continue
		}
		nf := NewNumberFormat(spec.Locale)
		if spec.Style != "" {
			nf.Style = Style(spec.Style)
		}
		if spec.MinFractionDigits != nil {
			nf.MinFractionDigits = *spec.MinFractionDigits
		}
		if spec.MaxFractionDigits != nil {
			nf.MaxFractionDigits = *spec.MaxFractionDigits
		} else if nf.MinFractionDigits > nf.MaxFractionDigits {
			nf.MaxFractionDigits = nf.MinFractionDigits
		}
		if spec.Grouping != nil {
			nf.UseGrouping = *spec.Grouping
		}
		presets[name] = nf
	}
	return &Manifest{Path: path, Presets: presets}
}

func (m *Manifest) validate(raw map[string]*presetSpec) error {
	var errs ValidationError
	if len(m.Presets) == 0 {
		errs.Issues = append(errs.Issues, "at least one preset must be defined")
	}
	for _, name := range sortedPresetNames(raw) {
		if raw[name] == nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preset %q is empty", name))
			continue
		}
		nf := m.Presets[name]
		if name == "" {
			errs.Issues = append(errs.Issues, "presets must not use empty keys")
		}
		if nf.Locale == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preset %q missing locale", name))
		}
		if !nf.Style.IsValid() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preset %q has unsupported style %q", name, nf.Style))
		}
		if nf.MinFractionDigits < 0 || nf.MinFractionDigits > 20 {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preset %q min_fraction_digits must be in [0, 20]", name))
		}
		if nf.MaxFractionDigits < 0 || nf.MaxFractionDigits > 20 {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preset %q max_fraction_digits must be in [0, 20]", name))
		}
		if nf.MinFractionDigits > nf.MaxFractionDigits {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preset %q min_fraction_digits exceeds max_fraction_digits", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func sortedPresetNames(raw map[string]*presetSpec) []string {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValid reports whether the style is recognised.
func (s Style) IsValid() bool {
	switch s {
	case StyleDecimal, StylePercent:
		return true
	default:
		return false
	}
}

// Preset returns the named preset configuration.
func (m *Manifest) Preset(name string) (*NumberFormat, bool) {
	nf, ok := m.Presets[name]
	return nf, ok
}

// Names returns preset names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Presets))
	for name := range m.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
