package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"

[target]
triple = "wasm32-unknown-unknown"

[diagnostics]
max = 20
warn-unused = false
color = "never"
format = "json"
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q", m.Package.Name)
	}
	if got := m.ResolveTarget(); got.PtrSize != 4 {
		t.Errorf("wasm32 pointer size = %d, want 4", got.PtrSize)
	}
	if m.Diagnostics.Max != 20 || m.Diagnostics.WarnUnused || m.Diagnostics.Format != "json" {
		t.Errorf("diagnostics section = %+v", m.Diagnostics)
	}
}

func TestLoadDefaultsForMissingSections(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"bare\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if m.Target.Triple != def.Target.Triple {
		t.Errorf("triple = %q, want default %q", m.Target.Triple, def.Target.Triple)
	}
	if m.Diagnostics.Max != def.Diagnostics.Max || !m.Diagnostics.WarnUnused {
		t.Errorf("diagnostics defaults not applied: %+v", m.Diagnostics)
	}
}

func TestLoadRejectsUnknownTriple(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[target]\ntriple = \"pdp11-unknown\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("unknown triple must fail validation")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nnme = \"typo\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("misspelled keys must be rejected")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"up\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("manifest found at %q, want under %q", path, root)
	}

	projRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || projRoot != root {
		t.Errorf("FindProjectRoot = %q ok=%v err=%v", projRoot, ok, err)
	}
}

func TestLoadOrDefaultWithoutManifest(t *testing.T) {
	m, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if m.Path != "" || m.Target.Triple != Default().Target.Triple {
		t.Errorf("expected pure defaults, got %+v", m)
	}
}
