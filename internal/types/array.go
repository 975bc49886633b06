package types

// ArrayOf returns the canonical fixed-length array type elem[count].
func (r *Registry) ArrayOf(elem TypeID, count uint32) TypeID {
	if !elem.IsValid() {
		return NoTypeID
	}
	return r.intern(Type{Kind: KindArray, Elem: elem, Count: count})
}

// ArrayInfo returns the element type and length for an array TypeID.
func (r *Registry) ArrayInfo(id TypeID) (elem TypeID, count uint32, ok bool) {
	t, found := r.Lookup(id)
	if !found || t.Kind != KindArray {
		return NoTypeID, 0, false
	}
	return t.Elem, t.Count, true
}
