package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"cedar/internal/ast"
	"cedar/internal/source"
)

// Scopes stores all allocated scopes in a compact slice arena.
type Scopes struct {
	data []Scope
}

// NewScopes creates the arena with an optional capacity hint.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 32
	}
	return &Scopes{
		data: make([]Scope, 1, capacity+1), // index 0 reserved for NoScopeID
	}
}

// New allocates a scope as a child of parent and returns its ID.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, owner ast.NodeID, span source.Span) ScopeID {
	raw, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("scopes arena overflow: %w", err))
	}
	id := ScopeID(raw)
	level := uint32(0)
	if parentScope := s.Get(parent); parentScope != nil {
		level = parentScope.Level + 1
	}
	s.data = append(s.data, Scope{
		Kind:   kind,
		Parent: parent,
		Owner:  owner,
		Level:  level,
		Span:   span,
		Names:  make(map[source.StringID]SymbolID),
	})
	if parentScope := s.Get(parent); parentScope != nil {
		parentScope.Children = append(parentScope.Children, id)
	}
	return id
}

// Get returns the scope pointer or nil for an invalid ID.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports the number of scopes excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Symbols stores declared symbols in a compact slice arena.
type Symbols struct {
	data []Symbol
}

// NewSymbols creates the arena with an optional capacity hint.
func NewSymbols(capacity uint32) *Symbols {
	if capacity == 0 {
		capacity = 64
	}
	return &Symbols{
		data: make([]Symbol, 1, capacity+1), // index 0 reserved for NoSymbolID
	}
}

// New allocates a symbol and returns its ID.
func (s *Symbols) New(sym Symbol) SymbolID {
	raw, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symbols arena overflow: %w", err))
	}
	id := SymbolID(raw)
	s.data = append(s.data, sym)
	return id
}

// Get returns a symbol pointer or nil for an invalid ID.
func (s *Symbols) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports the number of symbols excluding the sentinel.
func (s *Symbols) Len() int { return len(s.data) - 1 }
