package types

// CanCall reports whether a function of type fn accepts the given argument
// types: the arity must match and every argument must convert implicitly
// to its parameter.
func (r *Registry) CanCall(fn TypeID, args []TypeID) bool {
	return r.ConversionDistance(fn, args) >= 0
}

// ConversionDistance ranks how well args fit fn's parameters: -1 when the
// call is impossible, 0 on an exact match on every parameter, and a larger
// value the lossier the argument conversions get. The distance is the only
// signal overload resolution uses.
func (r *Registry) ConversionDistance(fn TypeID, args []TypeID) int {
	info, ok := r.FnInfo(fn)
	if !ok {
		return -1
	}
	if len(args) != len(info.Params) {
		return -1
	}
	total := 0
	for i, arg := range args {
		cost, convertible := r.ConvertCost(arg, info.Params[i])
		if !convertible {
			return -1
		}
		total += cost
	}
	return total
}

// ResolveOverload picks the candidate with the minimal conversion distance.
// It returns the index into candidates, or -1 when nothing is callable.
// A tie for the minimum is reported as ambiguous and never broken silently;
// the caller owns the resulting diagnostic.
func (r *Registry) ResolveOverload(candidates []TypeID, args []TypeID) (best int, ambiguous bool) {
	best = -1
	bestDist := -1
	for i, fn := range candidates {
		dist := r.ConversionDistance(fn, args)
		if dist < 0 {
			continue
		}
		switch {
		case best < 0 || dist < bestDist:
			best = i
			bestDist = dist
			ambiguous = false
		case dist == bestDist:
			ambiguous = true
		}
	}
	if best < 0 {
		return -1, false
	}
	return best, ambiguous
}
