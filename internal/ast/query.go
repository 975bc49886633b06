package ast

// CollectKind returns every node of the given kind under root, in the
// walker's pre-order.
func CollectKind(t *Tree, root NodeID, kind NodeKind) []NodeID {
	var out []NodeID
	Inspect(t, root, func(id NodeID) bool {
		if t.Kind(id) == kind {
			out = append(out, id)
		}
		return true
	}, nil)
	return out
}

// FindFirst returns the first node of the given kind under root in
// pre-order, or NoNodeID.
func FindFirst(t *Tree, root NodeID, kind NodeKind) NodeID {
	found := NoNodeID
	Inspect(t, root, func(id NodeID) bool {
		if found.IsValid() {
			return false
		}
		if t.Kind(id) == kind {
			found = id
			return false
		}
		return true
	}, nil)
	return found
}

// Ancestor walks parent links from id looking for a node of the given
// kind, id itself excluded.
func Ancestor(t *Tree, id NodeID, kind NodeKind) NodeID {
	n := t.Get(id)
	if n == nil {
		return NoNodeID
	}
	for cur := n.Parent; cur.IsValid(); {
		node := t.Get(cur)
		if node == nil {
			return NoNodeID
		}
		if node.Kind == kind {
			return cur
		}
		cur = node.Parent
	}
	return NoNodeID
}
