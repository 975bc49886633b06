// Package frontend bundles the per-unit state of an analysis run.
// Nothing here is global: every compilation unit owns its interner,
// tree, symbol table, type registry, layout engine and diagnostics bag,
// and two units never share mutable state.
package frontend

import (
	"cedar/internal/ast"
	"cedar/internal/diag"
	"cedar/internal/layout"
	"cedar/internal/project"
	"cedar/internal/source"
	"cedar/internal/symbols"
	"cedar/internal/types"
)

// Options configures a fresh unit context.
type Options struct {
	Manifest project.Manifest
	// NodeHint pre-sizes the tree arena; zero is fine.
	NodeHint uint
}

// Context is the complete working state for one compilation unit.
// It is not safe for concurrent mutation; run one goroutine per unit.
type Context struct {
	Name    string
	Files   *source.FileSet
	Strings *source.Interner
	Tree    *ast.Tree
	Symbols *symbols.Table
	Types   *types.Registry
	Layouts *layout.Engine
	Bag     *diag.Bag
}

// NewContext builds an empty unit named name.
func NewContext(name string, opts Options) *Context {
	m := opts.Manifest
	if m.Target.Triple == "" {
		m = project.Default()
	}
	bag := diag.NewBag(m.Diagnostics.Max)
	strings := source.NewInterner()
	registry := types.NewRegistry()
	table := symbols.NewTable(symbols.Options{
		Reporter:   diag.BagReporter{Bag: bag},
		WarnUnused: m.Diagnostics.WarnUnused,
	}, strings)
	return &Context{
		Name:    name,
		Files:   source.NewFileSet(),
		Strings: strings,
		Tree:    ast.NewTree(opts.NodeHint),
		Symbols: table,
		Types:   registry,
		Layouts: layout.New(m.ResolveTarget(), registry),
		Bag:     bag,
	}
}

// Failed reports whether analysis of this unit produced errors.
func (c *Context) Failed() bool { return c.Bag.HasErrors() }
