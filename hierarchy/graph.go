package hierarchy

import (
	"sort"

	"github.com/cottand/midir/internal/log"
	"github.com/cottand/midir/ir"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	xset "github.com/xtgo/set"
)

var logger = log.DefaultLogger.With("section", "hierarchy")

// Graph is an Oracle over declared supertype edges between reference types.
// Construction computes the transitive closure once; afterwards the graph is
// immutable and safe for concurrent queries.
type Graph struct {
	universe ir.Universe
	// ref name -> every proper supertype name
	ancestors map[string]*set.Set[string]
}

var _ Oracle = &Graph{}

// NewGraph builds a Graph from declared edges, mapping each reference type
// name to the names of its direct supertypes. Every reference type is
// implicitly below the universe's Object; parents may appear on the right
// hand side without a declaration of their own.
func NewGraph(universe ir.Universe, edges map[string][]string) (*Graph, error) {
	declared := make(map[string][]string, len(edges))
	for name, parents := range edges {
		parents = append([]string(nil), parents...)
		sort.Strings(parents)
		declared[name] = parents[:xset.Uniq(sort.StringSlice(parents))]
	}

	g := &Graph{
		universe:  universe,
		ancestors: make(map[string]*set.Set[string], len(declared)),
	}
	visiting := set.New[string](len(declared))
	for name := range declared {
		if _, err := g.close(name, declared, visiting); err != nil {
			return nil, err
		}
	}
	logger.Debug("built hierarchy graph", "types", len(g.ancestors))
	return g, nil
}

// close resolves the full proper-supertype set of name, memoising into
// g.ancestors.
func (g *Graph) close(name string, declared map[string][]string, visiting *set.Set[string]) (*set.Set[string], error) {
	if done, ok := g.ancestors[name]; ok {
		return done, nil
	}
	if visiting.Contains(name) {
		return nil, errors.Errorf("hierarchy cycle through %q", name)
	}
	visiting.Insert(name)
	defer visiting.Remove(name)

	anc := set.New[string](len(declared[name]) + 1)
	anc.Insert(g.universe.Object.Name)
	for _, parent := range declared[name] {
		anc.Insert(parent)
		parentAnc, err := g.close(parent, declared, visiting)
		if err != nil {
			return nil, errors.Wrapf(err, "closing supertypes of %q", name)
		}
		anc.InsertSet(parentAnc)
	}
	// a type is not its own proper supertype (relevant for Object itself)
	anc.Remove(name)
	g.ancestors[name] = anc
	return anc, nil
}

func (g *Graph) TypesEqual(a, b ir.Type) bool {
	return a.Equals(b)
}

func (g *Graph) Ancestor(a, b ir.Type) bool {
	if g.TypesEqual(a, b) {
		return true
	}
	switch bt := b.(type) {
	case ir.NullType:
		// null is below every reference type
		_, aIsRef := a.(ir.RefType)
		return aIsRef
	case ir.RefType:
		at, ok := a.(ir.RefType)
		if !ok {
			return false
		}
		if at.Name == g.universe.Object.Name {
			return true
		}
		anc, ok := g.ancestors[bt.Name]
		return ok && anc.Contains(at.Name)
	case ir.PrimType:
		at, ok := a.(ir.PrimType)
		return ok && primAncestor(at.Kind, bt.Kind)
	default:
		return false
	}
}

// primAncestor is the strict supertype relation between primitive kinds.
// Only the small-integer placeholder chain is ordered:
//
//	integer1 < integer127 < integer32767 < int
//
// with boolean above integer1 and byte/short/char above the prefixes that
// fit their value range.
func primAncestor(a, b ir.PrimKind) bool {
	switch b {
	case ir.Integer1Kind:
		switch a {
		case ir.Integer127Kind, ir.Integer32767Kind, ir.IntKind,
			ir.BoolKind, ir.ByteKind, ir.ShortKind, ir.CharKind:
			return true
		}
	case ir.Integer127Kind:
		switch a {
		case ir.Integer32767Kind, ir.IntKind,
			ir.ByteKind, ir.ShortKind, ir.CharKind:
			return true
		}
	case ir.Integer32767Kind:
		switch a {
		case ir.IntKind, ir.ShortKind, ir.CharKind:
			return true
		}
	}
	return false
}
