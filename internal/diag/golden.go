package diag

import (
	"fmt"
	"sort"
	"strings"

	"cedar/internal/source"
)

// FormatGolden renders diagnostics one per line in a stable order, suitable
// for golden-file comparisons in tests:
//
//	SEVERITY CODE path:line:col message
func FormatGolden(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	type line struct {
		sev, code, path string
		ln, col         uint32
		msg             string
	}
	rendered := make([]line, 0, len(diags))
	for _, d := range diags {
		path := "<unknown>"
		if f := fs.Get(d.Primary.File); f != nil {
			path = f.Path
		}
		start, _ := fs.Resolve(d.Primary)
		rendered = append(rendered, line{
			sev:  d.Severity.String(),
			code: d.Code.ID(),
			path: path,
			ln:   start.Line,
			col:  start.Col,
			msg:  d.Message,
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		a, b := rendered[i], rendered[j]
		if a.path != b.path {
			return a.path < b.path
		}
		if a.ln != b.ln {
			return a.ln < b.ln
		}
		if a.col != b.col {
			return a.col < b.col
		}
		if a.sev != b.sev {
			return a.sev < b.sev
		}
		return a.code < b.code
	})

	var sb strings.Builder
	for i, l := range rendered {
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.ln, l.col, l.msg)
		if i < len(rendered)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
