package types

import (
	"fmt"

	"fortio.org/safecast"

	"cedar/internal/source"
)

// StructField is one named field of a struct type.
type StructField struct {
	Name source.StringID
	Type TypeID
}

// StructInfo stores the fields for a struct type, in declaration order.
type StructInfo struct {
	Name   source.StringID
	Fields []StructField
	Decl   DeclID
}

// StructOf returns the canonical struct type with the given name and
// fields. Identity is structural over (name, field names, field types);
// Decl is recorded on first intern only.
func (r *Registry) StructOf(name source.StringID, fields []StructField, decl DeclID) TypeID {
	elems := make([]TypeID, 0, 2*len(fields))
	for _, f := range fields {
		elems = append(elems, TypeID(f.Name), f.Type)
	}
	key := compositeKey(KindStruct, uint32(name), elems)
	if id, ok := r.composites[key]; ok {
		return id
	}
	cloned := make([]StructField, len(fields))
	copy(cloned, fields)
	slot := r.appendStructInfo(StructInfo{Name: name, Fields: cloned, Decl: decl})
	id := r.internRaw(Type{Kind: KindStruct, Payload: slot})
	r.composites[key] = id
	return id
}

// StructInfo returns the payload for a struct TypeID.
func (r *Registry) StructInfo(id TypeID) (*StructInfo, bool) {
	t, ok := r.Lookup(id)
	if !ok || t.Kind != KindStruct {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(r.structs) {
		return nil, false
	}
	return &r.structs[t.Payload], true
}

// StructFieldByName returns the field with the given name.
func (r *Registry) StructFieldByName(id TypeID, name source.StringID) (StructField, bool) {
	info, ok := r.StructInfo(id)
	if !ok {
		return StructField{}, false
	}
	for _, f := range info.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

func (r *Registry) appendStructInfo(info StructInfo) uint32 {
	r.structs = append(r.structs, info)
	slot, err := safecast.Conv[uint32](len(r.structs) - 1)
	if err != nil {
		panic(fmt.Errorf("struct info overflow: %w", err))
	}
	return slot
}
