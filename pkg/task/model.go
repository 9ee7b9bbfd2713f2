// SPDX-License-Identifier: MPL-2.0

package task

import (
	"context"
	"strings"
)

type (
	// Action is the deferred body of a task. The registry core never looks
	// inside an action; it only stores the handle and later hands it the
	// bound argument values. Implementations live in the engine layer.
	Action interface {
		// Invoke runs the action body with the bound argument values, in
		// declared parameter order. Errors propagate unchanged to the caller.
		Invoke(ctx context.Context, args []string) error
	}

	// ParameterSpec declares a single task parameter.
	ParameterSpec struct {
		// Name is the parameter name, matched exactly against named arguments.
		Name string
		// Default is the fallback value used when neither a named nor a
		// positional argument binds to this parameter. Only meaningful when
		// HasDefault is true.
		Default string
		// HasDefault reports whether a default value was declared.
		HasDefault bool
	}

	// Task is a named unit of work. Tasks are immutable once the build stack
	// has finalized them into the registry.
	Task struct {
		// Description is the help text shown in listings ("" = none).
		Description string
		// Actions is the stored action handle, or nil when the task declared
		// no actions() body.
		Actions Action
		// Params are the declared parameters, in the order fixed at the
		// args() call (sorted lexicographically by name).
		Params []ParameterSpec
		// WorkingDir is the canonical absolute directory the task runs in
		// ("" = inherit the directory active when the run started).
		WorkingDir string
	}

	// Group is a named namespace holding ordered task/group entries.
	Group struct {
		Description string
		// Entries preserves declaration order; it drives listing only and
		// plays no role in resolution or execution.
		Entries []RegistryEntry
	}

	// EntryKind discriminates RegistryEntry variants.
	EntryKind int

	// RegistryEntry is a tagged reference to a finalized task or group,
	// identified by its full dot-separated path.
	RegistryEntry struct {
		Kind EntryKind
		Path string
	}
)

const (
	// KindTask marks a RegistryEntry that references a task.
	KindTask EntryKind = iota
	// KindGroup marks a RegistryEntry that references a group.
	KindGroup
)

// TaskRef returns a RegistryEntry referencing the task at path.
func TaskRef(path string) RegistryEntry { return RegistryEntry{Kind: KindTask, Path: path} }

// GroupRef returns a RegistryEntry referencing the group at path.
func GroupRef(path string) RegistryEntry { return RegistryEntry{Kind: KindGroup, Path: path} }

// leafName returns the final dot-separated segment of a full path. It is used
// only for shorthand resolution, never as a storage key.
func leafName(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
