package types

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive singletons.
type Builtins struct {
	Invalid TypeID
	Void    TypeID
	Bool    TypeID
	Char    TypeID
	I8      TypeID
	I16     TypeID
	I32     TypeID
	I64     TypeID
	U8      TypeID
	U16     TypeID
	U32     TypeID
	U64     TypeID
	F32     TypeID
	F64     TypeID
}

// Registry is the sole constructor of types. It canonicalizes structurally:
// two requests describing the same shape return the same TypeID, so ID
// equality is type equality. Component order matters for tuples, function
// parameters and union variants alike. Types live for the registry's
// lifetime and are never mutated; every tree holding TypeIDs must be
// dropped before the registry is.
type Registry struct {
	types      []Type
	index      map[typeKey]TypeID
	composites map[string]TypeID
	builtins   Builtins

	tuples  []TupleInfo
	unions  []UnionInfo
	fns     []FnInfo
	structs []StructInfo
}

// typeKey canonicalizes descriptors without list payloads.
type typeKey struct {
	Kind  Kind
	Width Width
	Elem  TypeID
	Count uint32
}

// NewRegistry constructs a registry seeded with the primitive singletons.
func NewRegistry() *Registry {
	r := &Registry{
		index:      make(map[typeKey]TypeID, 64),
		composites: make(map[string]TypeID, 64),
	}
	// Slot 0 of every payload table is reserved as an invalid sentinel.
	r.tuples = append(r.tuples, TupleInfo{})
	r.unions = append(r.unions, UnionInfo{})
	r.fns = append(r.fns, FnInfo{})
	r.structs = append(r.structs, StructInfo{})

	b := &r.builtins
	b.Invalid = r.internRaw(Type{Kind: KindInvalid})
	b.Void = r.intern(Type{Kind: KindVoid})
	b.Bool = r.intern(Type{Kind: KindBool})
	b.Char = r.intern(Type{Kind: KindChar})
	b.I8 = r.intern(MakeInt(Width8))
	b.I16 = r.intern(MakeInt(Width16))
	b.I32 = r.intern(MakeInt(Width32))
	b.I64 = r.intern(MakeInt(Width64))
	b.U8 = r.intern(MakeUint(Width8))
	b.U16 = r.intern(MakeUint(Width16))
	b.U32 = r.intern(MakeUint(Width32))
	b.U64 = r.intern(MakeUint(Width64))
	b.F32 = r.intern(MakeFloat(Width32))
	b.F64 = r.intern(MakeFloat(Width64))
	return r
}

// Builtins returns TypeIDs for the primitive singletons.
func (r *Registry) Builtins() Builtins {
	return r.builtins
}

// Lookup returns the descriptor for a TypeID.
func (r *Registry) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(r.types) {
		return Type{}, false
	}
	return r.types[id], true
}

// MustLookup panics when id is invalid.
func (r *Registry) MustLookup(id TypeID) Type {
	t, ok := r.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// Kind returns the kind for a TypeID, KindInvalid for unknown IDs.
func (r *Registry) Kind(id TypeID) Kind {
	t, ok := r.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return t.Kind
}

// Len counts interned types including the invalid sentinel.
func (r *Registry) Len() int {
	return len(r.types)
}

// intern canonicalizes descriptors without list payloads.
func (r *Registry) intern(t Type) TypeID {
	key := typeKey{Kind: t.Kind, Width: t.Width, Elem: t.Elem, Count: t.Count}
	if id, ok := r.index[key]; ok {
		return id
	}
	id := r.internRaw(t)
	r.index[key] = id
	return id
}

// internRaw appends the descriptor without consulting any index.
func (r *Registry) internRaw(t Type) TypeID {
	raw, err := safecast.Conv[uint32](len(r.types))
	if err != nil {
		panic(fmt.Errorf("type registry overflow: %w", err))
	}
	r.types = append(r.types, t)
	return TypeID(raw)
}

// compositeKey encodes a list-shaped composite for canonical lookup.
// Component order is part of the identity.
func compositeKey(kind Kind, head uint32, elems []TypeID) string {
	buf := make([]byte, 0, 5+4*len(elems))
	buf = append(buf, byte(kind))
	buf = binary.LittleEndian.AppendUint32(buf, head)
	for _, id := range elems {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
	}
	return string(buf)
}

func cloneTypeIDs(ids []TypeID) []TypeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]TypeID, len(ids))
	copy(out, ids)
	return out
}
