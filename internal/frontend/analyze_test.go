package frontend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cedar/internal/ast"
	"cedar/internal/source"
	"cedar/internal/symbols"
)

func TestAnalyzeUnitsIsolation(t *testing.T) {
	units := make([]*Context, 4)
	for i := range units {
		units[i] = NewContext(fmt.Sprintf("unit%d", i), Options{})
	}

	err := AnalyzeUnits(context.Background(), units, 2, func(_ context.Context, unit *Context) error {
		// Each unit declares the same name; isolated tables never clash.
		name := unit.Strings.Intern("shared")
		node := unit.Tree.NewNamed(ast.KindLetDecl, source.Span{}, name)
		if _, ok := unit.Symbols.Define(name, symbols.SymbolLet, node, source.Span{}); !ok {
			return fmt.Errorf("%s: definition clashed", unit.Name)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("AnalyzeUnits: %v", err)
	}
	for _, unit := range units {
		if unit.Failed() {
			t.Errorf("%s accumulated errors: %v", unit.Name, unit.Bag.Items())
		}
		if got := unit.Symbols.SymbolCount(unit.Symbols.GlobalScope()); got < 1 {
			t.Errorf("%s lost its definition", unit.Name)
		}
	}
}

func TestAnalyzeUnitsPropagatesError(t *testing.T) {
	units := []*Context{
		NewContext("ok", Options{}),
		NewContext("bad", Options{}),
	}
	boom := errors.New("boom")

	err := AnalyzeUnits(context.Background(), units, 1, func(_ context.Context, unit *Context) error {
		if unit.Name == "bad" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestAnalyzeUnitsHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	units := []*Context{NewContext("never", Options{})}
	ran := false
	err := AnalyzeUnits(ctx, units, 1, func(context.Context, *Context) error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatalf("cancelled context must surface an error")
	}
	if ran {
		t.Errorf("unit ran despite cancellation")
	}
}

func TestAnalyzeUnitsEmpty(t *testing.T) {
	if err := AnalyzeUnits(context.Background(), nil, 0, nil); err != nil {
		t.Fatalf("no units must be a no-op, got %v", err)
	}
}

func TestNewContextDefaults(t *testing.T) {
	unit := NewContext("u", Options{})
	if unit.Layouts == nil || unit.Types == nil || unit.Symbols == nil {
		t.Fatalf("context not fully wired: %+v", unit)
	}
	// Prelude builtins resolve without touching the manifest.
	if _, ok := unit.Symbols.LookupLocal(unit.Symbols.GlobalScope(), unit.Strings.Builtins().Bool); !ok {
		t.Errorf("builtin names must be pre-declared in a fresh unit")
	}
}
