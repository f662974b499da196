package typing_test

import (
	"testing"

	"github.com/cottand/midir/hierarchy"
	"github.com/cottand/midir/ir"
	"github.com/cottand/midir/typing"
	"github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	localX = ir.Local{Name: "x", Num: 0}
	localY = ir.Local{Name: "y", Num: 1}
	localZ = ir.Local{Name: "z", Num: 2}
)

func ref(name string) ir.Type { return ir.RefType{Name: name} }

func jvmUniverse() ir.Universe { return ir.UniverseFor(ir.ProfileJVM) }

func testHierarchy(t *testing.T) *hierarchy.Graph {
	t.Helper()
	g, err := hierarchy.NewGraph(jvmUniverse(), map[string][]string{
		"java.lang.Number":  {"java.io.Serializable"},
		"java.lang.Integer": {"java.lang.Number", "java.lang.Comparable"},
		"java.lang.Long":    {"java.lang.Number", "java.lang.Comparable"},
		"java.lang.String":  {"java.io.Serializable", "java.lang.Comparable"},
	})
	require.NoError(t, err)
	return g
}

func typingOf(locals []ir.Local, types []ir.Type) *typing.Typing {
	tg := typing.New(locals)
	for i, l := range locals {
		tg.Set(l, types[i])
	}
	return tg
}

func TestCompareDomination(t *testing.T) {
	h := testHierarchy(t)
	locals := []ir.Local{localX, localY, localZ}
	obj := jvmUniverse().Object

	broad := typingOf(locals, []ir.Type{ref("java.lang.Number"), obj, obj})
	narrow := typingOf(locals, []ir.Type{ref("java.lang.Integer"), obj, obj})

	assert.Equal(t, typing.MoreGeneral, typing.Compare(broad, narrow, h, nil))
	assert.Equal(t, typing.LessGeneral, typing.Compare(narrow, broad, h, nil))
}

func TestCompareAllTies(t *testing.T) {
	h := testHierarchy(t)
	locals := []ir.Local{localX, localY}

	a := typingOf(locals, []ir.Type{ref("java.lang.Integer"), ref("java.lang.String")})
	b := typingOf(locals, []ir.Type{ref("java.lang.Integer"), ref("java.lang.String")})

	assert.Equal(t, typing.EqualOrMixed, typing.Compare(a, b, h, nil))
}

func TestCompareUnrelatedSiblings(t *testing.T) {
	h := testHierarchy(t)
	locals := []ir.Local{localX, localY}

	// String and Integer are unrelated: whichever local is visited first
	// short-circuits the comparison
	a := typingOf(locals, []ir.Type{ref("java.lang.String"), ref("java.lang.Integer")})
	b := typingOf(locals, []ir.Type{ref("java.lang.Integer"), ref("java.lang.String")})

	assert.Equal(t, typing.Incomparable, typing.Compare(a, b, h, nil))
}

func TestCompareConflictingDirections(t *testing.T) {
	h := testHierarchy(t)
	locals := []ir.Local{localX, localY}

	a := typingOf(locals, []ir.Type{ref("java.lang.Number"), ref("java.lang.Integer")})
	b := typingOf(locals, []ir.Type{ref("java.lang.Integer"), ref("java.lang.Number")})

	assert.Equal(t, typing.Conflicting, typing.Compare(a, b, h, nil))
}

func TestCompareIgnoresGivenLocals(t *testing.T) {
	h := testHierarchy(t)
	locals := []ir.Local{localX, localY}
	u := jvmUniverse()

	// x says a is less general, y says a is more general: conflicting
	// unless y is ignored
	a := typingOf(locals, []ir.Type{ref("java.lang.Integer"), u.Object})
	b := typingOf(locals, []ir.Type{ref("java.lang.Number"), u.Serializable})

	ignore := set.From([]ir.Local{localY})
	assert.Equal(t, typing.LessGeneral, typing.Compare(a, b, h, ignore))
	assert.Equal(t, typing.Conflicting, typing.Compare(a, b, h, nil))
}

func TestCompareNullIsMostSpecific(t *testing.T) {
	h := testHierarchy(t)
	locals := []ir.Local{localX}

	unconstrained := typing.New(locals)
	integer := typingOf(locals, []ir.Type{ref("java.lang.Integer")})

	assert.Equal(t, typing.LessGeneral, typing.Compare(unconstrained, integer, h, nil))
	assert.Equal(t, typing.MoreGeneral, typing.Compare(integer, unconstrained, h, nil))
}
