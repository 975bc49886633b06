package symbols

import (
	"cedar/internal/ast"
	"cedar/internal/source"
)

// installPrelude pre-declares the builtin type names in the global scope
// so later passes resolve them like any other symbol, comparing by
// interned ID rather than text.
func (t *Table) installPrelude() {
	b := t.Strings.Builtins()
	for _, name := range []source.StringID{
		b.Int8, b.Int16, b.Int32, b.Int64,
		b.Uint8, b.Uint16, b.Uint32, b.Uint64,
		b.Float32, b.Float64,
		b.Bool, b.Char, b.Void,
	} {
		t.defineIn(t.global, name, SymbolType, SymbolFlagBuiltin, ast.NoNodeID, source.Span{}, false)
	}
}
