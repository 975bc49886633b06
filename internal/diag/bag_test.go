package diag

import (
	"strings"
	"testing"

	"cedar/internal/source"
)

func TestBagCountsAndCap(t *testing.T) {
	bag := NewBag(2)
	bag.Add(New(SevError, SemaRedefinition, source.Span{}, "first"))
	bag.Add(New(SevWarning, SemaUnusedSymbol, source.Span{}, "second"))
	if added := bag.Add(New(SevError, SemaUndefinedSymbol, source.Span{}, "third")); added {
		t.Fatalf("expected cap to reject the third diagnostic")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d", bag.Len())
	}
	if bag.Errors() != 2 {
		t.Fatalf("dropped diagnostics must still be counted, errors = %d", bag.Errors())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("severity flags wrong: errors=%v warnings=%v", bag.HasErrors(), bag.HasWarnings())
	}
}

func TestBagSortOrdersBySpan(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevError, SemaUndefinedSymbol, source.Span{File: 1, Start: 20, End: 25}, "later"))
	bag.Add(New(SevError, SemaRedefinition, source.Span{File: 1, Start: 5, End: 8}, "earlier"))
	bag.Sort()
	items := bag.Items()
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Fatalf("sort order wrong: %q then %q", items[0].Message, items[1].Message)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, SemaRedefinition, source.Span{}, "duplicate").
		WithNote(source.Span{}, "previous declaration here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("note lost")
	}
}

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("unit.cd", []byte("let x = 1\nlet x = 2\n"))
	bag := NewBag(10)
	bag.Add(New(SevError, SemaRedefinition, source.Span{File: id, Start: 14, End: 15}, "duplicate declaration of 'x'"))

	out := FormatGolden(bag.Items(), fs)
	want := "ERROR SEM3001 unit.cd:2:5 duplicate declaration of 'x'"
	if out != want {
		t.Fatalf("golden mismatch:\n got %q\nwant %q", out, want)
	}
	if strings.Count(out, "\n") != 0 {
		t.Fatalf("single diagnostic must render one line")
	}
}
