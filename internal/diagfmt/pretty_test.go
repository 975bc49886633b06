package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cedar/internal/diag"
	"cedar/internal/source"
)

func TestPrettyBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = 1\nlet x = 2\n")
	fileID := fs.AddVirtual("main.cd", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.SemaRedefinition,
		source.Span{File: fileID, Start: 14, End: 15},
		"redefinition of 'x'",
	).WithNote(source.Span{File: fileID, Start: 4, End: 5}, "previous definition is here"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, ShowSource: true})
	out := buf.String()

	if !strings.Contains(out, "main.cd:2:5: ERROR SEM3001: redefinition of 'x'") {
		t.Errorf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "main.cd:1:5: INFO note: previous definition is here") {
		t.Errorf("missing note line, got:\n%s", out)
	}
	if !strings.Contains(out, "let x = 2") {
		t.Errorf("missing source context, got:\n%s", out)
	}
}

func TestPrettyCaretPlacement(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("caret.cd", []byte("abcdef\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.SemaUnusedSymbol,
		source.Span{File: fileID, Start: 2, End: 5}, "unused"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, source and underline lines, got:\n%s", buf.String())
	}
	// Columns 3..5 of "abcdef" are marked: two leading cells, then ^~~.
	if lines[2] != "    ^~~" {
		t.Errorf("underline = %q, want %q", lines[2], "    ^~~")
	}
}

func TestPrettyOverflowNotice(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("many.cd", []byte("x\n"))

	bag := diag.NewBag(1)
	for range 3 {
		bag.Add(diag.New(diag.SevError, diag.SemaUndefinedSymbol,
			source.Span{File: fileID, Start: 0, End: 1}, "undefined symbol"))
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "suppressed") {
		t.Errorf("overflowed bag must announce suppression, got:\n%s", buf.String())
	}
}

func TestClampWidth(t *testing.T) {
	if got := clampWidth("short", 80); got != "short" {
		t.Errorf("no clamp expected, got %q", got)
	}
	got := clampWidth("0123456789", 8)
	if got != "01234..." {
		t.Errorf("clamped = %q, want %q", got, "01234...")
	}
}
