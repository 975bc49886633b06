package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"cedar/internal/layout"
)

// Manifest is the parsed cedar.toml. Missing sections fall back to
// defaults; validation errors surface through Validate so callers can
// turn them into diagnostics instead of aborting.
type Manifest struct {
	Package     PackageSection     `toml:"package"`
	Target      TargetSection      `toml:"target"`
	Diagnostics DiagnosticsSection `toml:"diagnostics"`

	// Path is where the manifest was read from; empty for defaults.
	Path string `toml:"-"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// TargetSection is the [target] table.
type TargetSection struct {
	Triple string `toml:"triple"`
}

// DiagnosticsSection is the [diagnostics] table.
type DiagnosticsSection struct {
	Max        int    `toml:"max"`
	WarnUnused bool   `toml:"warn-unused"`
	Color      string `toml:"color"` // auto | always | never
	Format     string `toml:"format"`
}

// Default returns the manifest used when no cedar.toml exists.
func Default() Manifest {
	return Manifest{
		Target: TargetSection{Triple: layout.X86_64LinuxGNU().Triple},
		Diagnostics: DiagnosticsSection{
			Max:        100,
			WarnUnused: true,
			Color:      "auto",
			Format:     "pretty",
		},
	}
}

// Load parses a cedar.toml manifest and fills in defaults for anything
// the file leaves out.
func Load(path string) (Manifest, error) {
	m := Default()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Manifest{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	m.Path = path
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadOrDefault finds the manifest upward from startDir, falling back to
// Default when none exists.
func LoadOrDefault(startDir string) (Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Manifest{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every field against its allowed values.
func (m *Manifest) Validate() error {
	if _, ok := layout.ByTriple(m.Target.Triple); !ok {
		return fmt.Errorf("%s: unknown target triple %q", m.locus(), m.Target.Triple)
	}
	if m.Diagnostics.Max < 0 {
		return fmt.Errorf("%s: [diagnostics].max must not be negative", m.locus())
	}
	switch m.Diagnostics.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: [diagnostics].color must be auto, always or never, got %q", m.locus(), m.Diagnostics.Color)
	}
	switch m.Diagnostics.Format {
	case "", "pretty", "json":
	default:
		return fmt.Errorf("%s: [diagnostics].format must be pretty or json, got %q", m.locus(), m.Diagnostics.Format)
	}
	return nil
}

// ResolveTarget returns the layout target the manifest selects.
func (m *Manifest) ResolveTarget() layout.Target {
	t, ok := layout.ByTriple(m.Target.Triple)
	if !ok {
		return layout.X86_64LinuxGNU()
	}
	return t
}

func (m *Manifest) locus() string {
	if m.Path != "" {
		return m.Path
	}
	return "cedar.toml"
}
