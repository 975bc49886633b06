package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cedar/internal/diag"
	"cedar/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.Faint)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order,
// so call bag.Sort() first if positional ordering matters. Each entry
// renders as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// optionally followed by the source line with a ^~~~ underline and by
// the notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Severity, d.Code.ID(), d.Primary, d.Message, opts)
		if opts.ShowSource {
			writeSourceLine(w, fs, d.Primary, opts)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeader(w, fs, diag.SevInfo, "note", note.Span, note.Msg, opts)
				if opts.ShowSource {
					writeSourceLine(w, fs, note.Span, opts)
				}
			}
		}
	}
	if bag.Overflowed() {
		fmt.Fprintf(w, "... further diagnostics suppressed (limit %d reached)\n", bag.Len())
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code string, span source.Span, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	path := formatPath(fs.Get(span.File), opts.PathMode)

	sevText := sev.String()
	codeText := code
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
		codeText = codeColor.Sprint(codeText)
	}
	line := fmt.Sprintf("%s:%d:%d: %s %s: %s", path, start.Line, start.Col, sevText, codeText, msg)
	fmt.Fprintln(w, clampWidth(line, opts.Width))
}

// writeSourceLine prints the offending line with a caret underline
// spanning the diagnostic's columns. Multi-line spans underline to the
// end of the first line only.
func writeSourceLine(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	text := f.Line(start.Line)
	if text == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", clampWidth(strings.ReplaceAll(text, "\t", " "), opts.Width))

	// Column arithmetic works in display cells so wide runes underline
	// correctly.
	runes := []rune(text)
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = len(runes) + 1
	}
	pad := cellWidth(runes, 1, startCol)
	marked := cellWidth(runes, startCol, endCol)
	if marked < 1 {
		marked = 1
	}
	caret := "^" + strings.Repeat("~", marked-1)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), caret)
}

// cellWidth measures the display width of columns [from, to) of the line,
// both 1-based rune columns.
func cellWidth(runes []rune, from, to int) int {
	width := 0
	for i := from; i < to && i-1 < len(runes); i++ {
		r := runes[i-1]
		if r == '\t' {
			width++
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func clampWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError, diag.SevFatal:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatPath(f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeRelative:
		return f.Path
	default:
		return f.Path
	}
}
