package types

import "fmt"

// TypeID uniquely identifies a type inside the registry. Canonicalization
// makes ID equality coincide with structural type equality.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// DeclID references the declaring node in the compilation unit's syntax
// tree arena; it carries no ownership. 0 means "no declaration site".
type DeclID uint32

const NoDeclID DeclID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindChar
	KindInt
	KindUint
	KindFloat
	KindArray
	KindTuple
	KindUnion
	KindFn
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindFn:
		return "fn"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsComposite reports whether the kind is built from component types.
func (k Kind) IsComposite() bool {
	switch k {
	case KindArray, KindTuple, KindUnion, KindFn, KindStruct:
		return true
	}
	return false
}

// Width captures the precision of integers/floats in bits.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Type is a compact descriptor. Primitives are fully described by Kind and
// Width; arrays by Elem and Count; list-shaped composites (tuple, union,
// fn, struct) point at a payload slot in the registry's side tables.
// Descriptors are immutable once interned.
type Type struct {
	Kind    Kind
	Width   Width  // numeric primitives
	Elem    TypeID // arrays
	Count   uint32 // arrays
	Payload uint32 // tuple/union/fn/struct info slot
}

// MakeInt describes a signed integer of the given width.
func MakeInt(width Width) Type {
	return Type{Kind: KindInt, Width: width}
}

// MakeUint describes an unsigned integer of the given width.
func MakeUint(width Width) Type {
	return Type{Kind: KindUint, Width: width}
}

// MakeFloat describes a floating-point type of the given width.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}
