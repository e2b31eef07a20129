package reference

import (
	_ "embed"
	"sync"
)

// DefaultVersion is the version tag of the embedded reference table.
const DefaultVersion = "2025.12"

//go:embed tables/visia-2025.12.hcl
var builtinSrc []byte

var (
	builtinOnce  sync.Once
	builtinTable *Table
)

// Builtin returns the embedded default reference table. The embedded source
// is trusted: a parse failure here is a packaging defect and panics at first
// use rather than surfacing a recoverable error on every call.
func Builtin() *Table {
	builtinOnce.Do(func() {
		table, err := ParseHCL("visia-"+DefaultVersion+".hcl", builtinSrc)
		if err != nil {
			panic("builtin reference table is invalid: " + err.Error())
		}
		builtinTable = table
	})
	return builtinTable
}
