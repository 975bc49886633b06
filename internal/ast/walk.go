package ast

// Hooks is one enter/leave pair. Enter runs pre-order and decides whether
// children are visited; Leave always runs afterwards, children or not.
type Hooks struct {
	Enter func(t *Tree, id NodeID) bool
	Leave func(t *Tree, id NodeID)
}

// Visitor dispatches on the closed node kind: each kind either has its own
// hooks or falls back to the Default pair, so every kind is handled and
// dispatch never fails. Hooks receive the tree and may decorate nodes in
// place; use Inspect for traversals that promise not to mutate.
type Visitor struct {
	kinds   [nodeKindCount]Hooks
	Default Hooks
}

// NewVisitor creates a visitor with the given default hooks.
func NewVisitor(def Hooks) *Visitor {
	return &Visitor{Default: def}
}

// On installs kind-specific hooks, replacing any previous ones.
func (v *Visitor) On(kind NodeKind, h Hooks) *Visitor {
	if kind < nodeKindCount {
		v.kinds[kind] = h
	}
	return v
}

func (v *Visitor) enter(t *Tree, id NodeID, kind NodeKind) bool {
	if h := v.kinds[kind].Enter; h != nil {
		return h(t, id)
	}
	if v.Default.Enter != nil {
		return v.Default.Enter(t, id)
	}
	return true
}

func (v *Visitor) leave(t *Tree, id NodeID, kind NodeKind) {
	if h := v.kinds[kind].Leave; h != nil {
		h(t, id)
		return
	}
	if v.Default.Leave != nil {
		v.Default.Leave(t, id)
	}
}

// Walk traverses the subtree rooted at id. Children are visited in
// insertion order, each one completely (its own enter/leave pair included)
// before its siblings; the node's leave hook runs after all children.
// Attribute nodes are not part of the structural walk.
func Walk(t *Tree, id NodeID, v *Visitor) {
	n := t.Get(id)
	if n == nil || v == nil {
		return
	}
	kind := n.Kind
	if v.enter(t, id, kind) {
		// The child slice is re-read per step so hooks may rewrite the
		// remainder of the list while it is being walked.
		for i := 0; i < len(t.Children(id)); i++ {
			Walk(t, t.Children(id)[i], v)
		}
	}
	v.leave(t, id, kind)
}

// Inspect is the function-based, read-only walker: pre runs in pre-order
// and controls descent, post (optional) runs in post-order. It visits
// exactly the nodes Walk visits, in the same order.
func Inspect(t *Tree, id NodeID, pre func(NodeID) bool, post func(NodeID)) {
	n := t.Get(id)
	if n == nil {
		return
	}
	descend := true
	if pre != nil {
		descend = pre(id)
	}
	if descend {
		for _, child := range n.Children {
			Inspect(t, child, pre, post)
		}
	}
	if post != nil {
		post(id)
	}
}
