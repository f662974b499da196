package typing_test

import (
	"testing"

	"github.com/cottand/midir/ir"
	"github.com/cottand/midir/typing"
	"github.com/stretchr/testify/assert"
)

func TestNewTypingStartsAtBottom(t *testing.T) {
	tg := typing.New([]ir.Local{localX, localY})

	assert.Equal(t, 2, tg.Len())
	assert.Equal(t, ir.NullType{}, tg.Get(localX))
	assert.Equal(t, ir.NullType{}, tg.Get(localY))
}

func TestCopyTypingIsIndependent(t *testing.T) {
	original := typing.New([]ir.Local{localX})
	original.Set(localX, ref("java.lang.Number"))

	copied := typing.Copy(original)
	copied.Set(localX, ref("java.lang.Integer"))

	assert.Equal(t, ref("java.lang.Number"), original.Get(localX))
	assert.Equal(t, ref("java.lang.Integer"), copied.Get(localX))
}

func TestTypingStringIsSortedByLocalName(t *testing.T) {
	tg := typing.New([]ir.Local{localZ, localX, localY})
	tg.Set(localX, ir.PrimType{Kind: ir.IntKind})
	tg.Set(localY, ref("java.lang.String"))

	assert.Equal(t, "{x:int, y:java.lang.String, z:null}", tg.String())
}
