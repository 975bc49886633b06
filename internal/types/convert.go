package types

// Per-argument conversion costs. The absolute values are irrelevant; what
// matters is the strict ordering exact < widening < union wrap < narrowing,
// which ConversionDistance relies on to rank overloads.
const (
	costExact     = 0
	costWiden     = 1
	costUnionWrap = 2
	costNarrow    = 4
)

// ConvertCost returns the implicit-conversion cost from one value type to
// another and whether the conversion exists at all:
//
//   - identical types convert for free;
//   - numeric widening (same-signedness integers to a wider width,
//     float32 to float64, integers to a float at least as wide) is cheap;
//   - wrapping a value into a union that lists it as an exact variant
//     costs slightly more;
//   - numeric narrowing and sign changes are allowed but expensive, so a
//     narrowing candidate always loses to a widening one;
//   - everything else does not convert.
func (r *Registry) ConvertCost(from, to TypeID) (int, bool) {
	if !from.IsValid() || !to.IsValid() {
		return 0, false
	}
	if from == to {
		return costExact, true
	}
	if r.UnionHasVariant(to, from) {
		return costUnionWrap, true
	}

	src, okSrc := r.Lookup(from)
	dst, okDst := r.Lookup(to)
	if !okSrc || !okDst {
		return 0, false
	}
	if !isNumeric(src.Kind) || !isNumeric(dst.Kind) {
		return 0, false
	}

	switch {
	case src.Kind == dst.Kind:
		if dst.Width > src.Width {
			return costWiden, true
		}
		return costNarrow, true
	case isInteger(src.Kind) && dst.Kind == KindFloat:
		if dst.Width >= src.Width {
			return costWiden, true
		}
		return costNarrow, true
	case src.Kind == KindFloat && isInteger(dst.Kind):
		return costNarrow, true
	default:
		// int <-> uint of any width.
		return costNarrow, true
	}
}

// Convertible reports whether from converts implicitly to to.
func (r *Registry) Convertible(from, to TypeID) bool {
	_, ok := r.ConvertCost(from, to)
	return ok
}

func isNumeric(k Kind) bool {
	return k == KindInt || k == KindUint || k == KindFloat
}

func isInteger(k Kind) bool {
	return k == KindInt || k == KindUint
}
