package typing

import (
	"github.com/cottand/midir/ir"
	"github.com/hashicorp/go-set/v3"
)

// FlatTyping flattens candidates into a multi-valued map from each local to
// every type assigned to it anywhere in the list. Tombstoned entries are
// skipped.
func FlatTyping(tgs []*Typing) map[ir.Local]*set.HashSet[ir.Type, uint64] {
	ft := make(map[ir.Local]*set.HashSet[ir.Type, uint64])
	for _, tg := range tgs {
		if tg == nil {
			continue
		}
		for l, ty := range tg.All() {
			types, ok := ft[l]
			if !ok {
				types = set.NewHashSet[ir.Type, uint64](3)
				ft[l] = types
			}
			types.Insert(ty)
		}
	}
	return ft
}

// ObjectLikeVars finds the locals whose flattened image across tgs is
// exactly the trivial top set of u. Such locals are intrinsically ambiguous
// (array covariance artifacts, mostly): they can only tie or force
// artificial incomparable/conflicting verdicts, so the minimizer excludes
// them from comparison to keep otherwise-dominated candidates prunable.
func ObjectLikeVars(tgs []*Typing, u ir.Universe) *set.Set[ir.Local] {
	tops := set.HashSetFrom[ir.Type, uint64](u.Tops())
	objectLike := set.New[ir.Local](0)
	for l, types := range FlatTyping(tgs) {
		if types.Equal(tops) {
			objectLike.Insert(l)
		}
	}
	return objectLike
}
