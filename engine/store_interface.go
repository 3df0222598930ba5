package engine

import "github.com/lixenwraith/sandfall/core"

// AnyStore provides type-erased lifecycle operations
// Lets World destroy entities without knowing concrete component types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
