package symbols

import (
	"cedar/internal/ast"
	"cedar/internal/source"
	"cedar/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolFn
	SymbolLet
	SymbolParam
	SymbolType
	SymbolField
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFn:
		return "fn"
	case SymbolLet:
		return "let"
	case SymbolParam:
		return "param"
	case SymbolType:
		return "type"
	case SymbolField:
		return "field"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	SymbolFlagBuiltin SymbolFlags = 1 << iota
	SymbolFlagMutable
	SymbolFlagPublic
)

// Symbol is one named entity bound in a scope. Index is unique and
// monotonically increasing within the owning scope. LastRef tracks the
// most recent resolved use; it stays NoNodeID for symbols that are never
// referenced, which is what the unused-symbol warning keys on. Symbols
// die only with their scope.
type Symbol struct {
	Index   uint32
	Name    source.StringID
	Kind    SymbolKind
	Flags   SymbolFlags
	Scope   ScopeID
	Span    source.Span
	Decl    ast.NodeID
	LastRef ast.NodeID
	Type    types.TypeID
}
