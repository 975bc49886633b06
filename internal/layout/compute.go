package layout

import "cedar/internal/types"

func (e *Engine) compute(id types.TypeID) TypeLayout {
	t, ok := e.Types.Lookup(id)
	if !ok {
		return TypeLayout{Size: 0, Align: 1}
	}

	switch t.Kind {
	case types.KindVoid:
		return TypeLayout{Size: 0, Align: 1}

	case types.KindBool:
		return TypeLayout{Size: 1, Align: 1}

	case types.KindChar:
		// Unicode scalar value.
		return scalarLayout(4)

	case types.KindInt, types.KindUint, types.KindFloat:
		return scalarLayout(int(t.Width) / 8)

	case types.KindFn:
		// Functions are opaque code pointers; signature complexity is
		// irrelevant to their layout.
		return e.ptrLayout()

	case types.KindArray:
		return e.arrayLayout(t.Elem, t.Count)

	case types.KindTuple:
		info, ok := e.Types.TupleInfo(id)
		if !ok {
			return TypeLayout{Size: 0, Align: 1}
		}
		return e.sequentialLayout(info.Elems)

	case types.KindStruct:
		info, ok := e.Types.StructInfo(id)
		if !ok {
			return TypeLayout{Size: 0, Align: 1}
		}
		fields := make([]types.TypeID, 0, len(info.Fields))
		for _, f := range info.Fields {
			fields = append(fields, f.Type)
		}
		return e.sequentialLayout(fields)

	case types.KindUnion:
		return e.unionLayout(id)

	default:
		return TypeLayout{Size: 0, Align: 1}
	}
}

// sequentialLayout places each element at the next offset aligned to its
// own requirement, padding in between; overall alignment is the maximum
// and the size is rounded up to it.
func (e *Engine) sequentialLayout(elems []types.TypeID) TypeLayout {
	size := 0
	align := 1
	offsets := make([]int, 0, len(elems))
	for _, elem := range elems {
		el := e.Of(elem)
		a := el.Align
		if a <= 0 {
			a = 1
		}
		size = roundUp(size, a)
		offsets = append(offsets, size)
		size += el.Size
		align = maxInt(align, a)
	}
	size = roundUp(size, align)
	return TypeLayout{Size: size, Align: align, FieldOffsets: offsets}
}

// unionLayout is the payload envelope only: size and alignment are the
// maximum over all variants; no discriminant tag is modeled.
func (e *Engine) unionLayout(id types.TypeID) TypeLayout {
	info, ok := e.Types.UnionInfo(id)
	if !ok || len(info.Variants) == 0 {
		return TypeLayout{Size: 0, Align: 1}
	}
	size := 0
	align := 1
	for _, v := range info.Variants {
		vl := e.Of(v)
		size = maxInt(size, vl.Size)
		align = maxInt(align, vl.Align)
	}
	return TypeLayout{Size: roundUp(size, align), Align: align}
}

func (e *Engine) arrayLayout(elem types.TypeID, count uint32) TypeLayout {
	el := e.Of(elem)
	if el.Align <= 0 {
		el.Align = 1
	}
	stride := roundUp(el.Size, el.Align)
	return TypeLayout{Size: stride * int(count), Align: el.Align}
}

func (e *Engine) ptrLayout() TypeLayout {
	size := e.Target.PtrSize
	align := e.Target.PtrAlign
	if size <= 0 {
		size = 8
	}
	if align <= 0 {
		align = size
	}
	return TypeLayout{Size: size, Align: align}
}

func scalarLayout(size int) TypeLayout {
	if size <= 0 {
		return TypeLayout{Size: 0, Align: 1}
	}
	return TypeLayout{Size: size, Align: size}
}
