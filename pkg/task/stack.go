// SPDX-License-Identifier: MPL-2.0

package task

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type frameKind int

const (
	frameRoot frameKind = iota
	frameGroup
	frameTask
)

// frame is one open scope on the build stack. Exactly one of task/group is
// populated for the non-root kinds.
type frame struct {
	kind     frameKind
	fullPath string
	task     *Task
	group    *Group
	dirSet   bool
}

// BuildStack is the construction-time state machine driven by rhaskfile
// evaluation. Each BeginTask/BeginGroup pushes an open scope; the matching
// End call finalizes the accumulated entry into the registry and attaches a
// reference to the enclosing scope.
type BuildStack struct {
	frames     []frame
	scriptRoot string
}

// NewBuildStack returns a stack holding only the root frame.
func NewBuildStack() *BuildStack {
	return &BuildStack{frames: []frame{{kind: frameRoot}}}
}

// Reset discards every open scope and the recorded script root, restoring
// the stack to its initial state before a fresh evaluation.
func (s *BuildStack) Reset() {
	s.frames = s.frames[:0]
	s.frames = append(s.frames, frame{kind: frameRoot})
	s.scriptRoot = ""
}

// SetScriptRoot records the directory containing the rhaskfile; relative
// dir() paths resolve against it.
func (s *BuildStack) SetScriptRoot(dir string) {
	s.scriptRoot = dir
}

// top returns the current frame. An empty stack is a broken construction
// protocol, not user error, so it fails loudly.
func (s *BuildStack) top() *frame {
	if len(s.frames) == 0 {
		panic("task: build stack underflow")
	}
	return &s.frames[len(s.frames)-1]
}

// BeginTask opens a task scope named name under the current frame.
func (s *BuildStack) BeginTask(r *Registry, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyTaskName
	}

	fullPath, err := s.childPath(trimmed)
	if err != nil {
		return err
	}
	if err := s.ensurePathAvailable(r, fullPath, KindTask); err != nil {
		return err
	}

	s.frames = append(s.frames, frame{kind: frameTask, fullPath: fullPath, task: &Task{}})
	return nil
}

// EndTask closes the current task scope, writing the finalized task into the
// registry and attaching a TaskRef to the enclosing scope.
func (s *BuildStack) EndTask(r *Registry) error {
	switch top := s.top(); top.kind {
	case frameTask:
		fullPath, t := top.fullPath, top.task
		s.frames = s.frames[:len(s.frames)-1]
		r.insertTask(fullPath, t)
		return s.attachEntryToParent(r, TaskRef(fullPath))
	case frameGroup:
		return ErrEndTaskInsideGroup
	default:
		return ErrEndTaskWithoutBegin
	}
}

// BeginGroup opens a group scope named name under the current frame.
func (s *BuildStack) BeginGroup(r *Registry, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyGroupName
	}

	fullPath, err := s.childPath(trimmed)
	if err != nil {
		return err
	}
	if err := s.ensurePathAvailable(r, fullPath, KindGroup); err != nil {
		return err
	}

	s.frames = append(s.frames, frame{kind: frameGroup, fullPath: fullPath, group: &Group{}})
	return nil
}

// EndGroup closes the current group scope, writing the finalized group into
// the registry and attaching a GroupRef to the enclosing scope.
func (s *BuildStack) EndGroup(r *Registry) error {
	switch top := s.top(); top.kind {
	case frameGroup:
		fullPath, g := top.fullPath, top.group
		s.frames = s.frames[:len(s.frames)-1]
		r.insertGroup(fullPath, g)
		return s.attachEntryToParent(r, GroupRef(fullPath))
	case frameTask:
		return ErrEndGroupInsideTask
	default:
		return ErrEndGroupWithoutBegin
	}
}

// SetActions stores the action handle on the current task scope.
func (s *BuildStack) SetActions(a Action) error {
	top := s.top()
	if top.kind != frameTask {
		return ErrActionsOutsideTask
	}
	top.task.Actions = a
	return nil
}

// SetDescription sets the description of the current task or group scope.
func (s *BuildStack) SetDescription(desc string) error {
	switch top := s.top(); top.kind {
	case frameTask:
		top.task.Description = desc
		return nil
	case frameGroup:
		top.group.Description = desc
		return nil
	default:
		return ErrDescriptionOutsideScope
	}
}

// SetArgs declares the current task's parameters from raw name/default
// pairs. A nil default marks the parameter as required. The specs are stored
// sorted lexicographically by name, which fixes the binding order; any prior
// declaration is replaced.
func (s *BuildStack) SetArgs(params map[string]*string) error {
	top := s.top()
	if top.kind != frameTask {
		return ErrArgsOutsideTask
	}

	specs := make([]ParameterSpec, 0, len(params))
	for name, def := range params {
		spec := ParameterSpec{Name: name}
		if def != nil {
			spec.Default = *def
			spec.HasDefault = true
		}
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })

	top.task.Params = specs
	return nil
}

// SetDirectory resolves and stores the working directory of the current task
// scope. Relative paths resolve against the recorded script root; the result
// is canonicalized and must name an existing directory. At most one dir()
// call is allowed per task scope.
func (s *BuildStack) SetDirectory(path string) error {
	top := s.top()
	if top.kind != frameTask {
		return ErrDirOutsideTask
	}
	if top.dirSet {
		return ErrDirAlreadySet
	}

	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ErrEmptyDir
	}

	resolved := trimmed
	if !filepath.IsAbs(resolved) {
		if s.scriptRoot == "" {
			return ErrDirBeforeRoot
		}
		resolved = filepath.Join(s.scriptRoot, resolved)
	}

	canonical, err := filepath.EvalSymlinks(resolved)
	if err != nil {
		return fmt.Errorf("dir(): %w", err)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return fmt.Errorf("dir(): %w", err)
	}
	if !info.IsDir() {
		return &NotDirectoryError{Path: trimmed}
	}

	top.task.WorkingDir = canonical
	top.dirSet = true
	return nil
}

// childPath joins name onto the enclosing scope's path. Task scopes cannot
// nest further scopes.
func (s *BuildStack) childPath(name string) (string, error) {
	switch top := s.top(); top.kind {
	case frameRoot:
		return name, nil
	case frameGroup:
		return top.fullPath + "." + name, nil
	default:
		return "", ErrNestedTask
	}
}

func (s *BuildStack) attachEntryToParent(r *Registry, entry RegistryEntry) error {
	switch top := s.top(); top.kind {
	case frameRoot:
		r.pushRootEntry(entry)
		return nil
	case frameGroup:
		top.group.Entries = append(top.group.Entries, entry)
		return nil
	default:
		return ErrNestedTask
	}
}

// ensurePathAvailable checks both the finalized registry and every still-open
// frame for a collision at fullPath, as either kind.
func (s *BuildStack) ensurePathAvailable(r *Registry, fullPath string, kind EntryKind) error {
	taskTaken := r.ContainsTask(fullPath) || s.frameOpen(frameTask, fullPath)
	groupTaken := r.ContainsGroup(fullPath) || s.frameOpen(frameGroup, fullPath)

	switch {
	case kind == KindTask && taskTaken:
		return &DuplicatePathError{Kind: KindTask, Path: fullPath}
	case kind == KindTask && groupTaken:
		return &DuplicatePathError{Kind: KindTask, Path: fullPath, AsOther: true}
	case kind == KindGroup && groupTaken:
		return &DuplicatePathError{Kind: KindGroup, Path: fullPath}
	case kind == KindGroup && taskTaken:
		return &DuplicatePathError{Kind: KindGroup, Path: fullPath, AsOther: true}
	}
	return nil
}

func (s *BuildStack) frameOpen(kind frameKind, fullPath string) bool {
	for i := range s.frames {
		if s.frames[i].kind == kind && s.frames[i].fullPath == fullPath {
			return true
		}
	}
	return false
}
