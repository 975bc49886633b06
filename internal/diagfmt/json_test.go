package diagfmt

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"cedar/internal/diag"
	"cedar/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = 1\nlet x = 2\n")
	fileID := fs.AddVirtual("test.cd", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.SemaRedefinition,
		source.Span{File: fileID, Start: 14, End: 15},
		"redefinition of 'x'",
	).WithNote(source.Span{File: fileID, Start: 4, End: 5}, "previous definition is here"))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}

	if output.Count != 1 || output.Errors != 1 {
		t.Errorf("count=%d errors=%d, want 1/1", output.Count, output.Errors)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(output.Diagnostics))
	}
	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SEM3001" {
		t.Errorf("severity=%s code=%s", d.Severity, d.Code)
	}
	if d.Location.File != "test.cd" {
		t.Errorf("basename mode must strip directories, got %q", d.Location.File)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 5 {
		t.Errorf("start position = %d:%d, want 2:5", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartLine != 1 {
		t.Errorf("note positions wrong: %+v", d.Notes)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.cd", []byte("x\n"))

	bag := diag.NewBag(10)
	for range 5 {
		bag.Add(diag.New(diag.SevWarning, diag.SemaUnusedSymbol,
			source.Span{File: fileID, Start: 0, End: 1}, "unused"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("Max must cap output, got count=%d", out.Count)
	}
	// Severity totals still reflect the whole bag.
	if out.Warnings != 5 {
		t.Errorf("warnings = %d, want 5", out.Warnings)
	}
}

func TestReportRoundtrip(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("r.cd", []byte("let y = 0\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SemaUndefinedSymbol,
		source.Span{File: fileID, Start: 4, End: 5}, "undefined symbol 'y'"))

	report := BuildReport("cedar", "0.1.0", bag, fs)
	path := filepath.Join(t.TempDir(), "reports", "run.mp")
	if err := WriteReport(path, &report); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	var loaded Report
	ok, err := ReadReport(path, &loaded)
	if err != nil || !ok {
		t.Fatalf("ReadReport: ok=%v err=%v", ok, err)
	}
	if loaded.Tool != "cedar" || loaded.Errors != 1 {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.Diagnostics) != 1 || loaded.Diagnostics[0].Code != "SEM3002" {
		t.Errorf("diagnostics did not survive the roundtrip: %+v", loaded.Diagnostics)
	}

	if ok, err := ReadReport(filepath.Join(t.TempDir(), "absent.mp"), &loaded); ok || err != nil {
		t.Errorf("missing report must be (false, nil), got ok=%v err=%v", ok, err)
	}
}
