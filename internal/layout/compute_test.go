package layout

import (
	"testing"

	"cedar/internal/types"
)

func newEngine(t *testing.T) (*Engine, types.Builtins) {
	t.Helper()
	reg := types.NewRegistry()
	return New(X86_64LinuxGNU(), reg), reg.Builtins()
}

func TestPrimitiveLayouts(t *testing.T) {
	e, b := newEngine(t)
	cases := []struct {
		name        string
		id          types.TypeID
		size, align int
	}{
		{"i8", b.I8, 1, 1},
		{"i32", b.I32, 4, 4},
		{"i64", b.I64, 8, 8},
		{"u16", b.U16, 2, 2},
		{"f32", b.F32, 4, 4},
		{"f64", b.F64, 8, 8},
		{"bool", b.Bool, 1, 1},
		{"char", b.Char, 4, 4},
		{"void", b.Void, 0, 1},
	}
	for _, tc := range cases {
		l := e.Of(tc.id)
		if l.Size != tc.size || l.Align != tc.align {
			t.Errorf("%s: got %d/%d, want %d/%d", tc.name, l.Size, l.Align, tc.size, tc.align)
		}
	}
}

func TestTupleLayoutWithPadding(t *testing.T) {
	e, b := newEngine(t)
	tup := e.Types.TupleOf([]types.TypeID{b.I32, b.F64, b.Bool}, types.NoDeclID)

	l := e.Of(tup)
	if l.Size != 24 || l.Align != 8 {
		t.Fatalf("(i32, f64, bool) = %d/%d, want 24/8", l.Size, l.Align)
	}
	wantOffsets := []int{0, 8, 16}
	for i, off := range l.FieldOffsets {
		if off != wantOffsets[i] {
			t.Fatalf("offsets = %v, want %v", l.FieldOffsets, wantOffsets)
		}
	}
}

func TestUnionLayoutEnvelope(t *testing.T) {
	e, b := newEngine(t)
	u := e.Types.UnionOf([]types.TypeID{b.I32, b.F64, b.Bool}, types.NoDeclID)

	l := e.Of(u)
	if l.Size != 8 || l.Align != 8 {
		t.Fatalf("i32|f64|bool = %d/%d, want 8/8", l.Size, l.Align)
	}
}

func TestFnLayoutIsPointer(t *testing.T) {
	e, b := newEngine(t)
	simple := e.Types.FnOf(nil, b.Void, types.NoDeclID)
	complexTup := e.Types.TupleOf([]types.TypeID{b.I64, b.F64, b.I64}, types.NoDeclID)
	gnarly := e.Types.FnOf([]types.TypeID{complexTup, complexTup}, complexTup, types.NoDeclID)

	for _, fn := range []types.TypeID{simple, gnarly} {
		l := e.Of(fn)
		if l.Size != 8 || l.Align != 8 {
			t.Fatalf("fn layout = %d/%d, want pointer 8/8", l.Size, l.Align)
		}
	}
}

func TestFnLayoutFollowsTarget(t *testing.T) {
	reg := types.NewRegistry()
	e := New(Wasm32(), reg)
	fn := reg.FnOf(nil, reg.Builtins().Void, types.NoDeclID)
	l := e.Of(fn)
	if l.Size != 4 || l.Align != 4 {
		t.Fatalf("wasm32 fn layout = %d/%d, want 4/4", l.Size, l.Align)
	}
}

func TestArrayLayout(t *testing.T) {
	e, b := newEngine(t)
	arr := e.Types.ArrayOf(b.I32, 6)
	l := e.Of(arr)
	if l.Size != 24 || l.Align != 4 {
		t.Fatalf("i32[6] = %d/%d, want 24/4", l.Size, l.Align)
	}
}

func TestStructLayoutMatchesTupleRules(t *testing.T) {
	e, b := newEngine(t)
	s := e.Types.StructOf(1, []types.StructField{
		{Name: 2, Type: b.Bool},
		{Name: 3, Type: b.I64},
	}, types.NoDeclID)

	l := e.Of(s)
	if l.Size != 16 || l.Align != 8 {
		t.Fatalf("{bool, i64} = %d/%d, want 16/8", l.Size, l.Align)
	}
	if len(l.FieldOffsets) != 2 || l.FieldOffsets[0] != 0 || l.FieldOffsets[1] != 8 {
		t.Fatalf("offsets = %v", l.FieldOffsets)
	}
}

func TestLayoutMemoized(t *testing.T) {
	e, b := newEngine(t)
	tup := e.Types.TupleOf([]types.TypeID{b.I32, b.F64}, types.NoDeclID)
	first := e.Of(tup)
	second := e.Of(tup)
	if first.Size != second.Size || first.Align != second.Align {
		t.Fatalf("memoized layout diverged")
	}
	if len(e.cache) == 0 {
		t.Fatalf("cache not populated")
	}
}
