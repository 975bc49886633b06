package symbols

import (
	"fmt"
	"sort"

	"cedar/internal/ast"
	"cedar/internal/diag"
	"cedar/internal/source"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Scopes, Symbols uint32 }

// Options configures table construction.
type Options struct {
	Hints    Hints
	Reporter diag.Reporter
	// WarnUnused toggles the advisory unused-symbol diagnostics emitted
	// when a scope is popped.
	WarnUnused bool
}

// Table is the symbol table for one compilation unit: one persistent
// global scope plus a current-scope cursor that PushScope/PopScope move.
// All recoverable conditions flow through the diag.Reporter; compilation
// continues past every one of them.
type Table struct {
	Scopes   *Scopes
	Symbols  *Symbols
	Strings  *source.Interner
	reporter diag.Reporter

	global     ScopeID
	current    ScopeID
	warnUnused bool
}

// NewTable builds a table with its global scope in place. If strings is
// nil a fresh interner is allocated; the builtin type names from the
// interner's prelude are pre-declared in the global scope.
func NewTable(opts Options, strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	t := &Table{
		Scopes:     NewScopes(opts.Hints.Scopes),
		Symbols:    NewSymbols(opts.Hints.Symbols),
		Strings:    strings,
		reporter:   reporter,
		warnUnused: opts.WarnUnused,
	}
	t.global = t.Scopes.New(ScopeGlobal, NoScopeID, ast.NoNodeID, source.Span{})
	t.current = t.global
	t.installPrelude()
	return t
}

// GlobalScope returns the persistent root scope.
func (t *Table) GlobalScope() ScopeID { return t.global }

// CurrentScope returns the cursor.
func (t *Table) CurrentScope() ScopeID { return t.current }

// PushScope creates a child of the current scope, owned by it, and makes
// it current.
func (t *Table) PushScope(kind ScopeKind, owner ast.NodeID, span source.Span) ScopeID {
	id := t.Scopes.New(kind, t.current, owner, span)
	t.current = id
	return id
}

// PopScope returns the cursor to the parent scope. Popping at the global
// scope is a warning, not a fatal condition, and leaves the cursor alone.
// Before leaving, every symbol in the popped scope with no recorded
// reference is reported as unused.
func (t *Table) PopScope() {
	if t.current == t.global {
		diag.ReportWarning(t.reporter, diag.SemaScopeUnderflow, source.Span{},
			"scope pop at global scope ignored").Emit()
		return
	}
	scope := t.Scopes.Get(t.current)
	if t.warnUnused {
		t.reportUnused(scope)
	}
	t.current = scope.Parent
}

func (t *Table) reportUnused(scope *Scope) {
	for _, symID := range scope.Symbols {
		sym := t.Symbols.Get(symID)
		if sym == nil || sym.LastRef.IsValid() || sym.Flags&SymbolFlagBuiltin != 0 {
			continue
		}
		name := t.Strings.MustLookup(sym.Name)
		diag.ReportWarning(t.reporter, diag.SemaUnusedSymbol, sym.Span,
			fmt.Sprintf("'%s' is declared but never used", name)).Emit()
	}
}

// Define binds name in the current scope. On a name collision within that
// scope it reports a redefinition carrying both locations and returns the
// existing binding with ok=false: the new definition does not take effect.
func (t *Table) Define(name source.StringID, kind SymbolKind, decl ast.NodeID, span source.Span) (SymbolID, bool) {
	return t.defineIn(t.current, name, kind, 0, decl, span, true)
}

// DefineLocal is Define without diagnostics, for callers probing a scope.
func (t *Table) DefineLocal(scope ScopeID, name source.StringID, kind SymbolKind, decl ast.NodeID, span source.Span) (SymbolID, bool) {
	return t.defineIn(scope, name, kind, 0, decl, span, false)
}

func (t *Table) defineIn(scopeID ScopeID, name source.StringID, kind SymbolKind, flags SymbolFlags, decl ast.NodeID, span source.Span, report bool) (SymbolID, bool) {
	scope := t.Scopes.Get(scopeID)
	if scope == nil || !name.IsValid() {
		return NoSymbolID, false
	}
	if existing, ok := scope.Names[name]; ok {
		if report {
			prev := t.Symbols.Get(existing)
			nameStr := t.Strings.MustLookup(name)
			b := diag.ReportError(t.reporter, diag.SemaRedefinition, span,
				fmt.Sprintf("redefinition of '%s'", nameStr))
			if prev != nil {
				note := "previous definition here"
				if prev.Flags&SymbolFlagBuiltin != 0 {
					note = "built-in definition"
				}
				b.WithNote(prev.Span, note)
			}
			b.Emit()
		}
		return existing, false
	}
	id := t.Symbols.New(Symbol{
		Index: uint32(len(scope.Symbols)),
		Name:  name,
		Kind:  kind,
		Flags: flags,
		Scope: scopeID,
		Span:  span,
		Decl:  decl,
	})
	scope.Names[name] = id
	scope.Symbols = append(scope.Symbols, id)
	return id, true
}

// LookupLocal checks only the given scope, no chain walk, no diagnostics.
func (t *Table) LookupLocal(scope ScopeID, name source.StringID) (SymbolID, bool) {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoSymbolID, false
	}
	id, ok := s.Names[name]
	return id, ok
}

// Lookup walks from the current scope outward to the root; the nearest
// binding wins. When the whole chain misses it reports an undefined-symbol
// error at useSpan and returns NoSymbolID. A hit records useSite as the
// symbol's most recent reference.
func (t *Table) Lookup(name source.StringID, useSite ast.NodeID, useSpan source.Span) (SymbolID, bool) {
	for scopeID := t.current; scopeID.IsValid(); {
		scope := t.Scopes.Get(scopeID)
		if scope == nil {
			break
		}
		if id, ok := scope.Names[name]; ok {
			t.UpdateReference(id, useSite)
			return id, true
		}
		scopeID = scope.Parent
	}
	nameStr := t.Strings.MustLookup(name)
	diag.ReportError(t.reporter, diag.SemaUndefinedSymbol, useSpan,
		fmt.Sprintf("undefined symbol '%s'", nameStr)).Emit()
	return NoSymbolID, false
}

// UpdateReference records the most recent use of a symbol.
func (t *Table) UpdateReference(id SymbolID, useSite ast.NodeID) {
	if sym := t.Symbols.Get(id); sym != nil && useSite.IsValid() {
		sym.LastRef = useSite
	}
}

// SortedSymbols returns the scope's symbols ordered by their per-scope
// index, for consumers that need determinism on top of the unordered map.
func (t *Table) SortedSymbols(scope ScopeID) []SymbolID {
	s := t.Scopes.Get(scope)
	if s == nil {
		return nil
	}
	out := make([]SymbolID, len(s.Symbols))
	copy(out, s.Symbols)
	sort.Slice(out, func(i, j int) bool {
		return t.Symbols.Get(out[i]).Index < t.Symbols.Get(out[j]).Index
	})
	return out
}

// SymbolCount reports how many symbols a scope holds.
func (t *Table) SymbolCount(scope ScopeID) int {
	s := t.Scopes.Get(scope)
	if s == nil {
		return 0
	}
	return len(s.Symbols)
}

// Validate checks structural invariants: one root, consistent parent and
// child links, name index matching the symbol list.
func (t *Table) Validate() error {
	roots := 0
	for i := 1; i <= t.Scopes.Len(); i++ {
		id := ScopeID(i)
		scope := t.Scopes.Get(id)
		if !scope.Parent.IsValid() {
			roots++
			continue
		}
		parent := t.Scopes.Get(scope.Parent)
		if parent == nil {
			return fmt.Errorf("scope %d has dangling parent %d", id, scope.Parent)
		}
		found := false
		for _, child := range parent.Children {
			if child == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("scope %d missing from parent %d child list", id, scope.Parent)
		}
		if scope.Level != parent.Level+1 {
			return fmt.Errorf("scope %d level %d, parent level %d", id, scope.Level, parent.Level)
		}
	}
	if roots != 1 {
		return fmt.Errorf("expected exactly one root scope, found %d", roots)
	}
	for i := 1; i <= t.Scopes.Len(); i++ {
		scope := t.Scopes.Get(ScopeID(i))
		if len(scope.Names) != len(scope.Symbols) {
			return fmt.Errorf("scope %d name index (%d) out of sync with symbol list (%d)",
				i, len(scope.Names), len(scope.Symbols))
		}
	}
	return nil
}
