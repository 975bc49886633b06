package symbols

type (
	// ScopeID indexes a scope in the table's arena.
	ScopeID uint32
	// SymbolID indexes a symbol in the table's arena.
	SymbolID uint32
)

const (
	NoScopeID  ScopeID  = 0
	NoSymbolID SymbolID = 0
)

func (id ScopeID) IsValid() bool  { return id != NoScopeID }
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
