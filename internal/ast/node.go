package ast

import (
	"fmt"

	"cedar/internal/source"
	"cedar/internal/types"
)

// NodeKind is the closed set of syntax node categories. Dispatch tables are
// indexed by it, so new kinds go at the end, before nodeKindCount.
type NodeKind uint8

const (
	KindFile NodeKind = iota
	KindFnDecl
	KindParamDecl
	KindLetDecl
	KindTypeDecl
	KindFieldDecl
	KindBlock
	KindIf
	KindWhile
	KindReturn
	KindExprStmt
	KindAssign
	KindIdent
	KindLiteral
	KindCall
	KindUnary
	KindBinary
	KindIndex
	KindMember
	KindTupleExpr
	KindTypeRef
	KindAttribute

	nodeKindCount
)

func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFnDecl:
		return "fn"
	case KindParamDecl:
		return "param"
	case KindLetDecl:
		return "let"
	case KindTypeDecl:
		return "type"
	case KindFieldDecl:
		return "field"
	case KindBlock:
		return "block"
	case KindIf:
		return "if"
	case KindWhile:
		return "while"
	case KindReturn:
		return "return"
	case KindExprStmt:
		return "expr-stmt"
	case KindAssign:
		return "assign"
	case KindIdent:
		return "ident"
	case KindLiteral:
		return "literal"
	case KindCall:
		return "call"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindIndex:
		return "index"
	case KindMember:
		return "member"
	case KindTupleExpr:
		return "tuple"
	case KindTypeRef:
		return "type-ref"
	case KindAttribute:
		return "attribute"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// NodeFlags accumulate per-pass facts about a node. Unset until the
// responsible pass runs; nothing in the node model requires them.
type NodeFlags uint16

const (
	FlagResolved NodeFlags = 1 << iota
	FlagTyped
	FlagConst
	FlagLValue
	FlagHasError
	FlagSynthetic
)

// Strings returns textual flag labels for debug output.
func (f NodeFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if f&FlagResolved != 0 {
		labels = append(labels, "resolved")
	}
	if f&FlagTyped != 0 {
		labels = append(labels, "typed")
	}
	if f&FlagConst != 0 {
		labels = append(labels, "const")
	}
	if f&FlagLValue != 0 {
		labels = append(labels, "lvalue")
	}
	if f&FlagHasError != 0 {
		labels = append(labels, "has-error")
	}
	if f&FlagSynthetic != 0 {
		labels = append(labels, "synthetic")
	}
	return labels
}

// Node is the homogeneous syntax node. Children hold real syntactic
// structure in insertion order; Attrs hold annotation nodes kept apart so
// structural traversals stay clean. Parent is a non-owning back-reference
// maintained by Tree.AddChild/RemoveChild. Name, Type and Flags start
// empty and are filled in by later passes.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Parent   NodeID
	Children []NodeID
	Attrs    []NodeID
	Name     source.StringID
	Type     types.TypeID
	Flags    NodeFlags
}
