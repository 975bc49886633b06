package types

// AssignableTo reports whether a value of type src can be assigned to a
// location of type dst without an explicit conversion:
//
//   - identical types always assign (canonicalization makes this an ID
//     comparison, including the exact-signature function case);
//   - a union accepts exactly its listed variant types, nothing
//     transitive or recursive;
//   - everything else, including cross-signature function values and
//     numeric width changes, needs an explicit conversion.
func (r *Registry) AssignableTo(src, dst TypeID) bool {
	if !src.IsValid() || !dst.IsValid() {
		return false
	}
	if src == dst {
		return true
	}
	return r.UnionHasVariant(dst, src)
}
