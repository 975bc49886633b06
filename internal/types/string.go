package types

import (
	"fmt"
	"strings"

	"cedar/internal/source"
)

// Format renders a type for diagnostics and debug output. Names for struct
// types come from the interner; nil is accepted and falls back to IDs.
func (r *Registry) Format(id TypeID, strs *source.Interner) string {
	t, ok := r.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindVoid, KindBool, KindChar:
		return t.Kind.String()
	case KindInt:
		return fmt.Sprintf("int%d", t.Width)
	case KindUint:
		return fmt.Sprintf("uint%d", t.Width)
	case KindFloat:
		return fmt.Sprintf("float%d", t.Width)
	case KindArray:
		return fmt.Sprintf("%s[%d]", r.Format(t.Elem, strs), t.Count)
	case KindTuple:
		info, _ := r.TupleInfo(id)
		return "(" + r.formatList(info.Elems, strs) + ")"
	case KindUnion:
		info, _ := r.UnionInfo(id)
		parts := make([]string, 0, len(info.Variants))
		for _, v := range info.Variants {
			parts = append(parts, r.Format(v, strs))
		}
		return strings.Join(parts, " | ")
	case KindFn:
		info, _ := r.FnInfo(id)
		return "fn(" + r.formatList(info.Params, strs) + ") -> " + r.Format(info.Result, strs)
	case KindStruct:
		info, _ := r.StructInfo(id)
		if strs != nil {
			if name, ok := strs.Lookup(info.Name); ok && name != "" {
				return name
			}
		}
		return fmt.Sprintf("struct#%d", id)
	default:
		return t.Kind.String()
	}
}

func (r *Registry) formatList(ids []TypeID, strs *source.Interner) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, r.Format(id, strs))
	}
	return strings.Join(parts, ", ")
}
