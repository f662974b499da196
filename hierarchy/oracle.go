// Package hierarchy answers subtyping and equality queries over the type
// lattice of a method body's enclosing program.
package hierarchy

import "github.com/cottand/midir/ir"

// Oracle is the capability the typing engine consumes. Implementations must
// be safe for concurrent queries and must not mutate observable state while
// minimization runs.
type Oracle interface {
	// Ancestor reports whether a is a supertype-or-equal of b.
	Ancestor(a, b ir.Type) bool
	// TypesEqual reports type-denotation equality, independent of
	// representation identity.
	TypesEqual(a, b ir.Type) bool
}
