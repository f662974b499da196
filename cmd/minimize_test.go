package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeFixture(t *testing.T) {
	fx := fixture{
		Profile: "jvm",
		Hierarchy: map[string][]string{
			"java.lang.Number":  {"java.io.Serializable"},
			"java.lang.Integer": {"java.lang.Number"},
		},
		Locals: []string{"x", "y"},
		Typings: []map[string]string{
			{"x": "java.lang.Number", "y": "int"},
			{"x": "java.lang.Integer", "y": "int"},
		},
	}

	lines, err := minimizeFixture(fx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "{x:java.lang.Integer, y:int}", lines[0])
}

func TestMinimizeFixtureUnknownLocal(t *testing.T) {
	fx := fixture{
		Locals:  []string{"x"},
		Typings: []map[string]string{{"oops": "int"}},
	}

	_, err := minimizeFixture(fx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown local")
}
