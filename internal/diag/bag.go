package diag

import "sort"

// Bag accumulates diagnostics for one compilation unit up to a fixed cap.
// It also keeps running severity counts so the driving pipeline can decide
// when to stop without scanning.
type Bag struct {
	items    []Diagnostic
	max      int
	dropped  int
	errors   int
	warnings int
	fatals   int
}

// NewBag creates a bag that holds at most max diagnostics.
func NewBag(max int) *Bag {
	if max <= 0 {
		max = 100
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends a diagnostic, honoring the cap. Severity counts are updated
// even for dropped diagnostics so HasErrors stays truthful.
func (b *Bag) Add(d Diagnostic) bool {
	b.count(d.Severity)
	if len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) count(sev Severity) {
	switch sev {
	case SevWarning:
		b.warnings++
	case SevError:
		b.errors++
	case SevFatal:
		b.fatals++
	}
}

func (b *Bag) Len() int      { return len(b.items) }
func (b *Bag) Errors() int   { return b.errors }
func (b *Bag) Warnings() int { return b.warnings }

// Overflowed reports whether any diagnostic was dropped by the cap.
func (b *Bag) Overflowed() bool { return b.dropped > 0 }

// HasErrors reports whether any error-or-worse diagnostic was added.
func (b *Bag) HasErrors() bool { return b.errors+b.fatals > 0 }

// HasWarnings reports whether any warning-or-worse diagnostic was added.
func (b *Bag) HasWarnings() bool { return b.warnings > 0 || b.HasErrors() }

// Items exposes the accumulated diagnostics. Callers must not mutate.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends every diagnostic from other, growing the cap as needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > b.max {
		b.max = total
	}
	for _, d := range other.items {
		b.Add(d)
	}
}

// Sort orders diagnostics by file, start, end, severity (desc), code for a
// deterministic presentation order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
