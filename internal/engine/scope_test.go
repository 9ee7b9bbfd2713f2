// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// realPath resolves symlinks so comparisons survive macOS /tmp -> /private/tmp.
func realPath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func getwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return realPath(t, wd)
}

func TestStartScopeChangesAndRestoresDirectory(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "work")
	require.NoError(t, os.Mkdir(target, 0o755))
	t.Chdir(base)

	state, err := NewExecutionState()
	require.NoError(t, err)
	require.False(t, state.IsActive())

	scope, err := StartScope(state, target)
	require.NoError(t, err)
	assert.True(t, state.IsActive())
	assert.Equal(t, 1, state.Depth())
	assert.Equal(t, realPath(t, target), getwd(t))

	scope.Close()
	assert.False(t, state.IsActive())
	assert.Equal(t, realPath(t, base), getwd(t))
}

func TestStartScopeWithoutWorkingDirUsesBaseDir(t *testing.T) {
	base := t.TempDir()
	other := filepath.Join(base, "elsewhere")
	require.NoError(t, os.Mkdir(other, 0o755))
	t.Chdir(base)

	state, err := NewExecutionState()
	require.NoError(t, err)

	// Wander off before starting the scope: the scope must bring execution
	// back to the captured base dir, not keep the drifted directory.
	require.NoError(t, os.Chdir(other))

	scope, err := StartScope(state, "")
	require.NoError(t, err)
	assert.Equal(t, realPath(t, base), getwd(t))

	scope.Close()
	assert.Equal(t, realPath(t, other), getwd(t))
}

func TestNestedScopesRestoreLIFO(t *testing.T) {
	base := t.TempDir()
	inner := filepath.Join(base, "inner")
	innermost := filepath.Join(base, "innermost")
	require.NoError(t, os.Mkdir(inner, 0o755))
	require.NoError(t, os.Mkdir(innermost, 0o755))
	t.Chdir(base)

	state, err := NewExecutionState()
	require.NoError(t, err)

	outer, err := StartScope(state, inner)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Depth())

	nested, err := StartNestedScope(state, "trigger()", innermost)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Depth())
	assert.Equal(t, realPath(t, innermost), getwd(t))

	nested.Close()
	assert.Equal(t, 1, state.Depth())
	assert.Equal(t, realPath(t, inner), getwd(t))

	outer.Close()
	assert.Equal(t, 0, state.Depth())
	assert.Equal(t, realPath(t, base), getwd(t))
}

func TestStartNestedScopeRequiresActiveState(t *testing.T) {
	state, err := NewExecutionState()
	require.NoError(t, err)

	_, err = StartNestedScope(state, "trigger()", "")
	require.Error(t, err)
	assert.EqualError(t, err, "trigger() can only be used inside actions().")
	assert.False(t, state.IsActive(), "failed guard must not open a scope")
}

func TestScopeCloseIsIdempotent(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "work")
	require.NoError(t, os.Mkdir(target, 0o755))
	t.Chdir(base)

	state, err := NewExecutionState()
	require.NoError(t, err)

	scope, err := StartScope(state, target)
	require.NoError(t, err)

	scope.Close()
	scope.Close()
	assert.Equal(t, 0, state.Depth())
	assert.Equal(t, realPath(t, base), getwd(t))
}

func TestStartScopeMissingDirectoryFails(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)

	state, err := NewExecutionState()
	require.NoError(t, err)

	_, err = StartScope(state, filepath.Join(base, "missing"))
	require.Error(t, err)
	assert.False(t, state.IsActive())
	assert.Equal(t, realPath(t, base), getwd(t), "failed start must not move the process")
}
