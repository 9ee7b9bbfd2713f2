// SPDX-License-Identifier: MPL-2.0

package task

import "strings"

// Registry holds the finalized tasks and groups produced by one rhaskfile
// evaluation. All writes happen through build-stack finalization during the
// single construction pass; afterwards the registry is read-only for the
// remainder of the process.
type Registry struct {
	taskPaths  []string
	tasks      map[string]*Task
	groupPaths []string
	groups     map[string]*Group

	rootEntries []RegistryEntry
	defaultTask string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks:  make(map[string]*Task),
		groups: make(map[string]*Group),
	}
}

// Task returns the finalized task at path.
func (r *Registry) Task(path string) (*Task, bool) {
	t, ok := r.tasks[path]
	return t, ok
}

// ContainsTask reports whether a task exists at path.
func (r *Registry) ContainsTask(path string) bool {
	_, ok := r.tasks[path]
	return ok
}

// Group returns the finalized group at path.
func (r *Registry) Group(path string) (*Group, bool) {
	g, ok := r.groups[path]
	return g, ok
}

// ContainsGroup reports whether a group exists at path.
func (r *Registry) ContainsGroup(path string) bool {
	_, ok := r.groups[path]
	return ok
}

// RootEntries returns the root-level entries in declaration order.
func (r *Registry) RootEntries() []RegistryEntry { return r.rootEntries }

// TaskPaths returns every task path in insertion (declaration-close) order.
func (r *Registry) TaskPaths() []string { return r.taskPaths }

// GroupPaths returns every group path in insertion (declaration-close) order.
func (r *Registry) GroupPaths() []string { return r.groupPaths }

// SetDefaultTask records the task name run when the CLI names no task.
// It fails when the name trims to empty or when a default was already set;
// the stored value is the trimmed name.
func (r *Registry) SetDefaultTask(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyDefaultTask
	}
	if r.defaultTask != "" {
		return ErrDefaultTaskAlreadySet
	}
	r.defaultTask = trimmed
	return nil
}

// DefaultTask returns the configured default task name, if any.
func (r *Registry) DefaultTask() (string, bool) {
	return r.defaultTask, r.defaultTask != ""
}

// insertTask and friends are invoked only by build-stack finalization; the
// collision checks have already run by the time a frame closes.

func (r *Registry) insertTask(path string, t *Task) {
	if _, ok := r.tasks[path]; !ok {
		r.taskPaths = append(r.taskPaths, path)
	}
	r.tasks[path] = t
}

func (r *Registry) insertGroup(path string, g *Group) {
	if _, ok := r.groups[path]; !ok {
		r.groupPaths = append(r.groupPaths, path)
	}
	r.groups[path] = g
}

func (r *Registry) pushRootEntry(entry RegistryEntry) {
	r.rootEntries = append(r.rootEntries, entry)
}
