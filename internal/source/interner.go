package source

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// StringID is a handle to one canonical copy of a string.
// Equal content always yields the same ID, so equality checks on names
// are integer comparisons.
type StringID uint32

// NoStringID maps to the empty string.
const NoStringID StringID = 0

func (id StringID) IsValid() bool { return id != NoStringID }

// Builtins holds pre-interned names every pass compares against by ID.
type Builtins struct {
	Int8, Int16, Int32, Int64     StringID
	Uint8, Uint16, Uint32, Uint64 StringID
	Float32, Float64              StringID
	Bool, Char, Void              StringID
	Main, Blank                   StringID
}

// Interner canonicalizes identifier and literal text.
// Identifier text is NFC-normalized before lookup so visually identical
// spellings share one ID.
type Interner struct {
	byID     []string
	index    map[string]StringID
	builtins Builtins
}

// NewInterner constructs an interner with the builtin names pre-interned.
func NewInterner() *Interner {
	in := &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
	b := &in.builtins
	b.Int8 = in.Intern("int8")
	b.Int16 = in.Intern("int16")
	b.Int32 = in.Intern("int32")
	b.Int64 = in.Intern("int64")
	b.Uint8 = in.Intern("uint8")
	b.Uint16 = in.Intern("uint16")
	b.Uint32 = in.Intern("uint32")
	b.Uint64 = in.Intern("uint64")
	b.Float32 = in.Intern("float32")
	b.Float64 = in.Intern("float64")
	b.Bool = in.Intern("bool")
	b.Char = in.Intern("char")
	b.Void = in.Intern("void")
	b.Main = in.Intern("main")
	b.Blank = in.Intern("_")
	return in
}

// Builtins returns the pre-interned name handles.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern returns the canonical ID for s, creating it on first sight.
func (in *Interner) Intern(s string) StringID {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	if id, ok := in.index[s]; ok {
		return id
	}
	// Own copy: callers may hand us a substring of a large parse buffer.
	cpy := string([]byte(s))
	raw, err := safecast.Conv[uint32](len(in.byID))
	if err != nil {
		panic(fmt.Errorf("interner overflow: %w", err))
	}
	id := StringID(raw)
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns the byte content as a string.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics on an invalid ID.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// Len counts interned strings including the NoStringID entry.
func (in *Interner) Len() int {
	return len(in.byID)
}

// Snapshot returns a copy of all interned strings, indexed by ID.
func (in *Interner) Snapshot() []string {
	return slices.Clone(in.byID)
}
