package types

import (
	"fmt"

	"fortio.org/safecast"
)

// FnInfo stores the signature for a function type.
type FnInfo struct {
	Params []TypeID // parameter types, in order
	Result TypeID
	Decl   DeclID
}

// FnOf returns the canonical function type with the given signature.
// Parameter order and the result are both part of the identity, so an
// exact-signature match is a TypeID comparison.
func (r *Registry) FnOf(params []TypeID, result TypeID, decl DeclID) TypeID {
	key := compositeKey(KindFn, uint32(result), params)
	if id, ok := r.composites[key]; ok {
		return id
	}
	slot := r.appendFnInfo(FnInfo{
		Params: cloneTypeIDs(params),
		Result: result,
		Decl:   decl,
	})
	id := r.internRaw(Type{Kind: KindFn, Payload: slot})
	r.composites[key] = id
	return id
}

// FnInfo returns the payload for a function TypeID.
func (r *Registry) FnInfo(id TypeID) (*FnInfo, bool) {
	t, ok := r.Lookup(id)
	if !ok || t.Kind != KindFn {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(r.fns) {
		return nil, false
	}
	return &r.fns[t.Payload], true
}

// FnParam returns the parameter type at index i, (NoTypeID, false) when
// out of range.
func (r *Registry) FnParam(id TypeID, i int) (TypeID, bool) {
	info, ok := r.FnInfo(id)
	if !ok || i < 0 || i >= len(info.Params) {
		return NoTypeID, false
	}
	return info.Params[i], true
}

// FnResult returns the result type, NoTypeID for non-functions.
func (r *Registry) FnResult(id TypeID) TypeID {
	info, ok := r.FnInfo(id)
	if !ok {
		return NoTypeID
	}
	return info.Result
}

func (r *Registry) appendFnInfo(info FnInfo) uint32 {
	r.fns = append(r.fns, info)
	slot, err := safecast.Conv[uint32](len(r.fns) - 1)
	if err != nil {
		panic(fmt.Errorf("fn info overflow: %w", err))
	}
	return slot
}
