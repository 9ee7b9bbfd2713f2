// SPDX-License-Identifier: MPL-2.0

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryWithTasks(t *testing.T, paths ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, path := range paths {
		r.insertTask(path, &Task{})
	}
	return r
}

func TestRegistry_ResolveTask(t *testing.T) {
	tests := []struct {
		name           string
		tasks          []string
		identifier     string
		wantKind       LookupKind
		wantPath       string
		wantCandidates []string
	}{
		{
			name:       "exact full path",
			tasks:      []string{"ops.deploy"},
			identifier: "ops.deploy",
			wantKind:   LookupFound,
			wantPath:   "ops.deploy",
		},
		{
			name:       "exact match wins over shorthand ambiguity",
			tasks:      []string{"deploy", "ops.deploy"},
			identifier: "deploy",
			wantKind:   LookupFound,
			wantPath:   "deploy",
		},
		{
			name:       "unique leaf shorthand",
			tasks:      []string{"ops.deploy"},
			identifier: "deploy",
			wantKind:   LookupFound,
			wantPath:   "ops.deploy",
		},
		{
			name:           "ambiguous leaf lists sorted candidates",
			tasks:          []string{"ops.deploy", "build.deploy"},
			identifier:     "deploy",
			wantKind:       LookupAmbiguous,
			wantCandidates: []string{"build.deploy", "ops.deploy"},
		},
		{
			name:       "dotted identifier never leaf-matches",
			tasks:      []string{"ops.deploy"},
			identifier: "missing.deploy",
			wantKind:   LookupNotFound,
		},
		{
			name:       "identifier is trimmed",
			tasks:      []string{"ops.deploy"},
			identifier: "  ops.deploy  ",
			wantKind:   LookupFound,
			wantPath:   "ops.deploy",
		},
		{
			name:       "empty identifier",
			tasks:      []string{"ops.deploy"},
			identifier: "   ",
			wantKind:   LookupNotFound,
		},
		{
			name:       "unknown leaf",
			tasks:      []string{"ops.deploy"},
			identifier: "unknown",
			wantKind:   LookupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registryWithTasks(t, tt.tasks...)
			lookup := r.ResolveTask(tt.identifier)
			require.Equal(t, tt.wantKind, lookup.Kind)
			assert.Equal(t, tt.wantPath, lookup.FullPath)
			assert.Equal(t, tt.wantCandidates, lookup.Candidates)
		})
	}
}

func TestRegistry_ResolveTask_ExactIndependentOfAmbiguity(t *testing.T) {
	r := registryWithTasks(t, "build.deploy", "ops.deploy")

	lookup := r.ResolveTask("build.deploy")
	require.Equal(t, LookupFound, lookup.Kind)
	assert.Equal(t, "build.deploy", lookup.FullPath)

	lookup = r.ResolveTask("deploy")
	require.Equal(t, LookupAmbiguous, lookup.Kind)
	assert.Equal(t, []string{"build.deploy", "ops.deploy"}, lookup.Candidates)
}

func TestRegistry_ResolveGroup(t *testing.T) {
	r := NewRegistry()
	r.insertGroup("ops", &Group{})
	r.insertGroup("infra.ops", &Group{})

	lookup := r.ResolveGroup("ops")
	require.Equal(t, LookupFound, lookup.Kind)
	assert.Equal(t, "ops", lookup.FullPath)

	lookup = r.ResolveGroup("infra.ops")
	require.Equal(t, LookupFound, lookup.Kind)

	lookup = r.ResolveGroup("missing")
	assert.Equal(t, LookupNotFound, lookup.Kind)
}
