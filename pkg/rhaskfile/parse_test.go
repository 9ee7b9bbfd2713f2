// SPDX-License-Identifier: MPL-2.0

package rhaskfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
default_task: "build"

entries: [
	{
		task:        "build"
		description: "Compile the project"
		args: {
			profile: "debug"
			arch:    null
		}
		actions: [
			{run: "echo building $1 for $2"},
		]
	},
	{
		group:       "ops"
		description: "Operational tasks"
		entries: [
			{
				task: "deploy"
				actions: [
					{trigger: "build", with: ["x86_64"], set: {profile: "release"}},
					{run: "echo deploying"},
				]
			},
		]
	},
]
`

func TestParseBytes(t *testing.T) {
	rf, err := ParseBytes([]byte(sampleDocument), "rhaskfile.cue")
	require.NoError(t, err)

	assert.Equal(t, "build", rf.DefaultTask)
	require.Len(t, rf.Entries, 2)

	build := rf.Entries[0]
	assert.Equal(t, "build", build.Task)
	assert.Equal(t, "Compile the project", build.Description)
	require.Contains(t, build.Args, "profile")
	require.NotNil(t, build.Args["profile"])
	assert.Equal(t, "debug", *build.Args["profile"])
	require.Contains(t, build.Args, "arch")
	assert.Nil(t, build.Args["arch"], "null default should decode to nil")
	require.Len(t, build.Actions, 1)
	assert.Equal(t, "echo building $1 for $2", build.Actions[0].Run)

	ops := rf.Entries[1]
	require.True(t, ops.IsGroup())
	require.Len(t, ops.Entries, 1)

	deploy := ops.Entries[0]
	assert.Equal(t, "deploy", deploy.Task)
	require.Len(t, deploy.Actions, 2)
	assert.Equal(t, "build", deploy.Actions[0].Trigger)
	assert.Equal(t, []string{"x86_64"}, deploy.Actions[0].With)
	assert.Equal(t, map[string]string{"profile": "release"}, deploy.Actions[0].Set)
	assert.Equal(t, "echo deploying", deploy.Actions[1].Run)
}

func TestParseBytesEntryOrder(t *testing.T) {
	doc := `entries: [
		{task: "c", actions: [{run: "true"}]},
		{task: "a", actions: [{run: "true"}]},
		{task: "b", actions: [{run: "true"}]},
	]`

	rf, err := ParseBytes([]byte(doc), "rhaskfile.cue")
	require.NoError(t, err)

	var names []string
	for _, e := range rf.Entries {
		names = append(names, e.Task)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names, "document order must survive decoding")
}

func TestParseBytesErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing entries",
			doc:     `default_task: "build"`,
			wantErr: "entries",
		},
		{
			name:    "unknown field rejected",
			doc:     `entries: [{task: "x", shell: "bash"}]`,
			wantErr: "shell",
		},
		{
			name:    "empty default task",
			doc:     "default_task: \"\"\nentries: []",
			wantErr: "default_task",
		},
		{
			name:    "entry with neither task nor group",
			doc:     `entries: [{description: "orphan"}]`,
			wantErr: "entries[0]: entry must set task or group",
		},
		{
			name:    "entry with both task and group",
			doc:     `entries: [{task: "x", group: "y"}]`,
			wantErr: "entries[0]: entry sets both task and group",
		},
		{
			name:    "group with actions",
			doc:     `entries: [{group: "g", actions: [{run: "true"}]}]`,
			wantErr: "entries[0].actions: actions is only valid on tasks",
		},
		{
			name:    "task with nested entries",
			doc:     `entries: [{task: "t", entries: [{task: "u"}]}]`,
			wantErr: "entries[0].entries: entries is only valid on groups",
		},
		{
			name:    "step with neither run nor trigger",
			doc:     `entries: [{task: "t", actions: [{}]}]`,
			wantErr: "entries[0].actions[0]: step must set run or trigger",
		},
		{
			name:    "run step with trigger arguments",
			doc:     `entries: [{task: "t", actions: [{run: "true", with: ["a"]}]}]`,
			wantErr: "with/set are only valid on trigger steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.doc), "rhaskfile.cue")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RhaskfileName)
	require.NoError(t, os.WriteFile(path, []byte(`entries: [{task: "x", actions: [{run: "true"}]}]`), 0o644))

	rf, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, rf.FilePath)

	_, err = Parse(filepath.Join(dir, "missing.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rhaskfile")
}

func TestParseBytesSizeLimit(t *testing.T) {
	huge := make([]byte, MaxFileSize+1)
	_, err := ParseBytes(huge, "rhaskfile.cue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}
