package types

import (
	"fmt"

	"fortio.org/safecast"
)

// TupleInfo stores the element types for a tuple type, in declaration order.
type TupleInfo struct {
	Elems []TypeID
	Decl  DeclID
}

// TupleOf returns the canonical tuple type with the given elements.
// Element order is part of the identity: (i32, f64) and (f64, i32) are
// distinct types. Decl is recorded on first intern only.
func (r *Registry) TupleOf(elems []TypeID, decl DeclID) TypeID {
	key := compositeKey(KindTuple, 0, elems)
	if id, ok := r.composites[key]; ok {
		return id
	}
	slot := r.appendTupleInfo(TupleInfo{Elems: cloneTypeIDs(elems), Decl: decl})
	id := r.internRaw(Type{Kind: KindTuple, Payload: slot})
	r.composites[key] = id
	return id
}

// TupleInfo returns the payload for a tuple TypeID.
func (r *Registry) TupleInfo(id TypeID) (*TupleInfo, bool) {
	t, ok := r.Lookup(id)
	if !ok || t.Kind != KindTuple {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(r.tuples) {
		return nil, false
	}
	return &r.tuples[t.Payload], true
}

// TupleElem returns the element type at index i. Out-of-range access
// yields (NoTypeID, false), never a panic.
func (r *Registry) TupleElem(id TypeID, i int) (TypeID, bool) {
	info, ok := r.TupleInfo(id)
	if !ok || i < 0 || i >= len(info.Elems) {
		return NoTypeID, false
	}
	return info.Elems[i], true
}

// TupleLen returns the element count, 0 for non-tuples.
func (r *Registry) TupleLen(id TypeID) int {
	info, ok := r.TupleInfo(id)
	if !ok {
		return 0
	}
	return len(info.Elems)
}

func (r *Registry) appendTupleInfo(info TupleInfo) uint32 {
	r.tuples = append(r.tuples, info)
	slot, err := safecast.Conv[uint32](len(r.tuples) - 1)
	if err != nil {
		panic(fmt.Errorf("tuple info overflow: %w", err))
	}
	return slot
}
