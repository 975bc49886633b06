package types

import (
	"fmt"

	"fortio.org/safecast"
)

// UnionInfo stores the variant types for a union, in declaration order.
// Variant order is part of the union's identity: i32|f64 and f64|i32 are
// distinct, non-equal types.
type UnionInfo struct {
	Variants []TypeID
	Decl     DeclID
}

// UnionOf returns the canonical union type over the given variants.
// Decl is recorded on first intern only.
func (r *Registry) UnionOf(variants []TypeID, decl DeclID) TypeID {
	key := compositeKey(KindUnion, 0, variants)
	if id, ok := r.composites[key]; ok {
		return id
	}
	slot := r.appendUnionInfo(UnionInfo{Variants: cloneTypeIDs(variants), Decl: decl})
	id := r.internRaw(Type{Kind: KindUnion, Payload: slot})
	r.composites[key] = id
	return id
}

// UnionInfo returns the payload for a union TypeID.
func (r *Registry) UnionInfo(id TypeID) (*UnionInfo, bool) {
	t, ok := r.Lookup(id)
	if !ok || t.Kind != KindUnion {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(r.unions) {
		return nil, false
	}
	return &r.unions[t.Payload], true
}

// UnionHasVariant reports whether variant is one of the union's exact
// variants. There is no transitive or recursive matching.
func (r *Registry) UnionHasVariant(union, variant TypeID) bool {
	info, ok := r.UnionInfo(union)
	if !ok {
		return false
	}
	for _, v := range info.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

func (r *Registry) appendUnionInfo(info UnionInfo) uint32 {
	r.unions = append(r.unions, info)
	slot, err := safecast.Conv[uint32](len(r.unions) - 1)
	if err != nil {
		panic(fmt.Errorf("union info overflow: %w", err))
	}
	return slot
}
