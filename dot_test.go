package tinyfsm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotGraph(t *testing.T) {
	m := New()

	a, err := m.AddState(stateA, "boot")
	require.NoError(t, err)
	a.AllowNext(stateB, true).AllowNext(stateC)
	b, err := m.AddState(stateB, "run")
	require.NoError(t, err)
	b.AllowNext(stateC)
	c, err := m.AddState(stateC, "halt")
	require.NoError(t, err)
	c.Final()

	dot := m.DotGraph()

	assert.True(t, strings.HasPrefix(dot, "digraph {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))

	assert.Contains(t, dot, `"1" [label="boot"];`)
	assert.Contains(t, dot, `"2" [label="run"];`)
	assert.Contains(t, dot, `"3" [label="halt", peripheries=2];`)

	// Default edge is bold, the rest solid
	assert.Contains(t, dot, `"1" -> "2" [style="bold"];`)
	assert.Contains(t, dot, `"1" -> "3" [style="solid"];`)
	assert.Contains(t, dot, `"2" -> "3" [style="bold"];`)

	// First inserted state is marked initial
	assert.Contains(t, dot, `init -> "1"`)
}

func TestDotGraphEscapesLabels(t *testing.T) {
	m := New()
	_, err := m.AddState(stateA, `say "hi"`)
	require.NoError(t, err)

	dot := m.DotGraph()
	assert.Contains(t, dot, `[label="say \"hi\""];`)
}

func TestDotGraphEmptyMachine(t *testing.T) {
	m := New()
	dot := m.DotGraph()

	assert.True(t, strings.HasPrefix(dot, "digraph {\n"))
	assert.NotContains(t, dot, "init")
}
