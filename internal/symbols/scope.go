package symbols

import (
	"cedar/internal/ast"
	"cedar/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // the one persistent root
	ScopeFunction           // function body
	ScopeBlock              // generic block
	ScopeType               // type body (struct fields)
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeType:
		return "type"
	default:
		return "invalid"
	}
}

// Scope is one lexical namespace. Parent is a non-owning back-reference;
// children are owned and die with their parent. Names maps each name to
// at most one symbol: there is no shadowing inside a single scope.
// Map iteration order is unordered by contract; deterministic consumers
// go through Table.SortedSymbols.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Owner    ast.NodeID
	Level    uint32
	Span     source.Span
	Names    map[source.StringID]SymbolID
	Symbols  []SymbolID // insertion order
	Children []ScopeID
}
