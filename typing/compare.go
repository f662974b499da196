package typing

import (
	"github.com/cottand/midir/hierarchy"
	"github.com/cottand/midir/ir"
	"github.com/hashicorp/go-set/v3"
)

// Order is the comparator verdict between two typings.
type Order int8

const (
	Incomparable Order = -2
	LessGeneral  Order = -1
	EqualOrMixed Order = 0
	MoreGeneral  Order = 1
	Conflicting  Order = 2
)

func (o Order) String() string {
	switch o {
	case Incomparable:
		return "incomparable"
	case LessGeneral:
		return "lessGeneral"
	case EqualOrMixed:
		return "equalOrMixed"
	case MoreGeneral:
		return "moreGeneral"
	case Conflicting:
		return "conflicting"
	default:
		panic("invalid Order")
	}
}

// Compare orders a against b by generality under h, skipping locals in
// ignore (which may be nil).
//
// MoreGeneral means a's type is a supertype-or-equal of b's at every
// compared local with at least one strict supertype; LessGeneral is the
// mirror. EqualOrMixed means every compared local tied. A local where
// neither type relates to the other makes the typings Incomparable; two
// locals disagreeing in direction make them Conflicting. Neither of those
// two dominates the other, so minimization keeps both.
func Compare(a, b *Typing, h hierarchy.Oracle, ignore set.Collection[ir.Local]) Order {
	r := EqualOrMixed
	for l, ta := range a.All() {
		if ignore != nil && ignore.Contains(l) {
			continue
		}
		tb := b.Get(l)
		var cmp Order
		switch {
		case h.TypesEqual(ta, tb):
			cmp = EqualOrMixed
		case h.Ancestor(ta, tb):
			cmp = MoreGeneral
			if r == LessGeneral {
				return Conflicting
			}
		case h.Ancestor(tb, ta):
			cmp = LessGeneral
			if r == MoreGeneral {
				return Conflicting
			}
		default:
			// outright mismatch, no partial conclusion is possible
			return Incomparable
		}
		if r == EqualOrMixed {
			r = cmp
		}
	}
	return r
}
