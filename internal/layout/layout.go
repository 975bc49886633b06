package layout

import "cedar/internal/types"

// TypeLayout is the memory layout of one type for a specific Target.
type TypeLayout struct {
	Size  int
	Align int

	// Struct/tuple only: byte offset of each element, in order.
	FieldOffsets []int
}

// Engine computes and caches memory layout for types. One engine serves
// one registry; layouts are memoized per TypeID, which canonicalization
// makes sound.
type Engine struct {
	Target Target
	Types  *types.Registry

	cache map[types.TypeID]TypeLayout
}

// New creates an Engine for the given target and registry.
func New(target Target, reg *types.Registry) *Engine {
	return &Engine{
		Target: target,
		Types:  reg,
		cache:  make(map[types.TypeID]TypeLayout, 256),
	}
}

// Of computes the layout of a type, consulting the cache first.
func (e *Engine) Of(id types.TypeID) TypeLayout {
	if e == nil || e.Types == nil {
		return TypeLayout{Size: 0, Align: 1}
	}
	if cached, ok := e.cache[id]; ok {
		return cached
	}
	l := e.compute(id)
	e.cache[id] = l
	return l
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	if r := n % align; r != 0 {
		return n + (align - r)
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
