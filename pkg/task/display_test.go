// SPDX-License-Identifier: MPL-2.0

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	s := NewBuildStack()
	require.NoError(t, s.BeginGroup(r, "build"))
	require.NoError(t, s.SetDescription("Build pipeline"))
	require.NoError(t, s.BeginTask(r, "compile"))
	require.NoError(t, s.SetDescription("Compile sources"))
	require.NoError(t, s.EndTask(r))
	require.NoError(t, s.BeginTask(r, "lint"))
	require.NoError(t, s.EndTask(r))
	require.NoError(t, s.EndGroup(r))
	require.NoError(t, s.BeginTask(r, "clean"))
	require.NoError(t, s.EndTask(r))
	return r
}

func TestRegistry_CollectListOutput(t *testing.T) {
	r := listFixture(t)

	out := r.CollectListOutput("")
	require.Empty(t, out.Messages)
	require.Len(t, out.Items, 4)

	assert.Equal(t, ListItemGroup, out.Items[0].Kind)
	assert.Equal(t, "build", out.Items[0].Name)
	assert.Equal(t, 0, out.Items[0].Depth)
	assert.Equal(t, "Build pipeline", out.Items[0].Description)

	assert.Equal(t, ListItemTask, out.Items[1].Kind)
	assert.Equal(t, "compile", out.Items[1].Name)
	assert.Equal(t, "build.compile", out.Items[1].Path)
	assert.Equal(t, 1, out.Items[1].Depth)

	assert.Equal(t, "lint", out.Items[2].Name)
	assert.Equal(t, 1, out.Items[2].Depth)

	assert.Equal(t, "clean", out.Items[3].Name)
	assert.Equal(t, 0, out.Items[3].Depth)
}

func TestRegistry_CollectListOutput_GroupFilter(t *testing.T) {
	r := listFixture(t)

	out := r.CollectListOutput("build")
	require.Empty(t, out.Messages)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "build", out.Items[0].Name)
	assert.Equal(t, "compile", out.Items[1].Name)
}

func TestRegistry_CollectListOutput_UnknownGroup(t *testing.T) {
	r := listFixture(t)

	out := r.CollectListOutput("nope")
	assert.Empty(t, out.Items)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, ListMessageWarn, out.Messages[0].Level)
	assert.Equal(t, "Group 'nope' does not exist.", out.Messages[0].Text)
}

func TestRegistry_CollectListOutput_AmbiguousGroup(t *testing.T) {
	r := NewRegistry()
	r.insertGroup("a.ops", &Group{})
	r.insertGroup("b.ops", &Group{})

	out := r.CollectListOutput("ops")
	assert.Empty(t, out.Items)
	require.Len(t, out.Messages, 4)
	assert.Equal(t, "Group 'ops' matches multiple candidates:", out.Messages[0].Text)
	assert.Equal(t, "  - a.ops", out.Messages[1].Text)
	assert.Equal(t, "  - b.ops", out.Messages[2].Text)
}
