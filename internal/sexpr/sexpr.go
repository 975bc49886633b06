// Package sexpr renders node trees as S-expressions for debugging and
// golden tests. The dump is read only and never mutates the tree.
package sexpr

import (
	"fmt"
	"io"
	"strings"

	"cedar/internal/ast"
	"cedar/internal/source"
	"cedar/internal/types"
)

// Options controls what metadata the dump carries alongside the node kinds.
type Options struct {
	// Strings resolves node names; nil leaves names as raw ids.
	Strings *source.Interner
	// Types renders attached type ids; nil omits them.
	Types *types.Registry
	// Spans adds byte ranges to every node.
	Spans bool
	// Indent pretty-prints one node per line; otherwise the output is a
	// single line.
	Indent bool
}

// Dump writes the subtree rooted at id to w.
func Dump(w io.Writer, t *ast.Tree, id ast.NodeID, opts Options) {
	var sb strings.Builder
	build(&sb, t, id, opts, 0)
	fmt.Fprintln(w, sb.String())
}

// String renders the subtree rooted at id into a string.
func String(t *ast.Tree, id ast.NodeID, opts Options) string {
	var sb strings.Builder
	build(&sb, t, id, opts, 0)
	return sb.String()
}

func build(sb *strings.Builder, t *ast.Tree, id ast.NodeID, opts Options, depth int) {
	node := t.Get(id)
	if node == nil {
		sb.WriteString("(<nil>)")
		return
	}

	sb.WriteByte('(')
	sb.WriteString(node.Kind.String())
	if node.Name.IsValid() {
		sb.WriteByte(' ')
		sb.WriteString(formatName(node.Name, opts.Strings))
	}
	if opts.Types != nil && node.Type.IsValid() {
		fmt.Fprintf(sb, " :type %s", opts.Types.Format(node.Type, opts.Strings))
	}
	if opts.Spans {
		fmt.Fprintf(sb, " :span %d..%d", node.Span.Start, node.Span.End)
	}

	for _, child := range node.Children {
		if opts.Indent {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("  ", depth+1))
		} else {
			sb.WriteByte(' ')
		}
		build(sb, t, child, opts, depth+1)
	}
	sb.WriteByte(')')
}

func formatName(name source.StringID, interner *source.Interner) string {
	if interner == nil {
		return fmt.Sprintf("#%d", uint32(name))
	}
	s, ok := interner.Lookup(name)
	if !ok {
		return fmt.Sprintf("#%d", uint32(name))
	}
	if strings.ContainsAny(s, " ()\"\n\t") {
		escaped := strings.ReplaceAll(s, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return "\"" + escaped + "\""
	}
	return s
}
