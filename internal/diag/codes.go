package diag

import "fmt"

// Code identifies a diagnostic category. Bands are reserved per phase so
// codes stay stable as new diagnostics are added.
type Code uint16

const (
	UnknownCode Code = 0

	// Semantic analysis: 3000-3999.
	SemaInfo               Code = 3000
	SemaRedefinition       Code = 3001
	SemaUndefinedSymbol    Code = 3002
	SemaUnusedSymbol       Code = 3003
	SemaScopeUnderflow     Code = 3004
	SemaNoMatchingOverload Code = 3005
	SemaAmbiguousCall      Code = 3006
	SemaNotAssignable      Code = 3007

	// Project/configuration: 5000-5999.
	ProjInfo          Code = 5000
	ProjBadManifest   Code = 5001
	ProjUnknownTarget Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:            "unknown diagnostic",
	SemaInfo:               "semantic note",
	SemaRedefinition:       "symbol redefinition",
	SemaUndefinedSymbol:    "undefined symbol",
	SemaUnusedSymbol:       "unused symbol",
	SemaScopeUnderflow:     "scope pop at global scope",
	SemaNoMatchingOverload: "no matching overload",
	SemaAmbiguousCall:      "ambiguous call",
	SemaNotAssignable:      "type not assignable",
	ProjInfo:               "project note",
	ProjBadManifest:        "invalid project manifest",
	ProjUnknownTarget:      "unknown build target",
}

// ID renders the stable short identifier, e.g. SEM3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

// Title is the human-readable category name.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
