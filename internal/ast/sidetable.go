package ast

// SideTable associates pass-specific data with nodes without widening the
// node struct. Each pass declares its own typed table; there is no
// string-keyed erasure on the node itself.
type SideTable[T any] struct {
	m map[NodeID]T
}

// NewSideTable creates an empty table.
func NewSideTable[T any]() *SideTable[T] {
	return &SideTable[T]{m: make(map[NodeID]T)}
}

// Set stores value for id, replacing any previous entry.
func (st *SideTable[T]) Set(id NodeID, value T) {
	if !id.IsValid() {
		return
	}
	st.m[id] = value
}

// Get returns the value for id.
func (st *SideTable[T]) Get(id NodeID) (T, bool) {
	v, ok := st.m[id]
	return v, ok
}

// Delete removes the entry for id.
func (st *SideTable[T]) Delete(id NodeID) {
	delete(st.m, id)
}

// Len reports the number of entries.
func (st *SideTable[T]) Len() int {
	return len(st.m)
}

// Clear drops every entry, keeping the table usable.
func (st *SideTable[T]) Clear() {
	clear(st.m)
}
