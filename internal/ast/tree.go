package ast

import (
	"slices"

	"cedar/internal/source"
	"cedar/internal/types"
)

// Tree owns the node arena for one compilation unit. Nodes are created
// during parsing/lowering, decorated in place by later passes, and
// reclaimed only when the tree is Reset or dropped.
type Tree struct {
	nodes *Arena[Node]
}

// NewTree creates a tree with an optional node-capacity hint.
func NewTree(capHint uint) *Tree {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Tree{
		nodes: NewArena[Node](capHint),
	}
}

// New allocates a node of the given kind.
func (t *Tree) New(kind NodeKind, span source.Span) NodeID {
	return NodeID(t.nodes.Allocate(Node{Kind: kind, Span: span}))
}

// NewNamed allocates a node carrying an interned name (idents, decls).
func (t *Tree) NewNamed(kind NodeKind, span source.Span, name source.StringID) NodeID {
	return NodeID(t.nodes.Allocate(Node{Kind: kind, Span: span, Name: name}))
}

// Get returns a pointer into the arena, or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Len reports the number of live nodes.
func (t *Tree) Len() int {
	return int(t.nodes.Len())
}

// Reset reclaims every node while keeping the arena's backing storage for
// the next unit.
func (t *Tree) Reset() {
	t.nodes.Reset()
}

// AddChild appends child to parent's ordered child list and sets the
// child's back-reference. A child already linked elsewhere is detached
// first so every node has at most one parent.
func (t *Tree) AddChild(parent, child NodeID) {
	p := t.Get(parent)
	c := t.Get(child)
	if p == nil || c == nil {
		return
	}
	if c.Parent.IsValid() {
		t.RemoveChild(c.Parent, child)
	}
	p.Children = append(p.Children, child)
	c.Parent = parent
}

// RemoveChild unlinks child from parent and clears the back-reference.
// The node itself stays alive in the arena.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	p := t.Get(parent)
	c := t.Get(child)
	if p == nil || c == nil {
		return false
	}
	idx := slices.Index(p.Children, child)
	if idx < 0 {
		return false
	}
	p.Children = slices.Delete(p.Children, idx, idx+1)
	c.Parent = NoNodeID
	return true
}

// AddAttr attaches an annotation node to owner. Attributes live outside the
// child list so structural traversals do not see them.
func (t *Tree) AddAttr(owner, attr NodeID) {
	o := t.Get(owner)
	a := t.Get(attr)
	if o == nil || a == nil {
		return
	}
	o.Attrs = append(o.Attrs, attr)
	a.Parent = owner
}

// SetType records the resolved type for a node and marks it typed.
func (t *Tree) SetType(id NodeID, typ types.TypeID) {
	if n := t.Get(id); n != nil {
		n.Type = typ
		n.Flags |= FlagTyped
	}
}

// SetFlags ORs flags into the node's bitset.
func (t *Tree) SetFlags(id NodeID, flags NodeFlags) {
	if n := t.Get(id); n != nil {
		n.Flags |= flags
	}
}

// Kind returns the node's kind, or nodeKindCount for an invalid ID.
func (t *Tree) Kind(id NodeID) NodeKind {
	if n := t.Get(id); n != nil {
		return n.Kind
	}
	return nodeKindCount
}

// Children returns the node's child list. Read-only.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.Get(id); n != nil {
		return n.Children
	}
	return nil
}

// Attrs returns the node's attribute list. Read-only.
func (t *Tree) Attrs(id NodeID) []NodeID {
	if n := t.Get(id); n != nil {
		return n.Attrs
	}
	return nil
}
