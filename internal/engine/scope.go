// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"fmt"
	"os"
)

// ExecutionState tracks action nesting across one run. Depth zero means no
// action is executing; action-only primitives (trigger, shell steps) are
// rejected while idle, before any directory change happens.
type ExecutionState struct {
	// baseDir is the directory the run started in. Tasks without a dir()
	// declaration execute here, not in whatever directory an outer scope
	// happens to have changed to.
	baseDir string
	depth   int
}

// NewExecutionState captures the base directory for a run.
func NewExecutionState() (*ExecutionState, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return &ExecutionState{baseDir: base}, nil
}

// IsActive reports whether any action scope is currently open.
func (s *ExecutionState) IsActive() bool { return s.depth > 0 }

// Depth returns the current nesting depth.
func (s *ExecutionState) Depth() int { return s.depth }

// BaseDir returns the directory captured when the state was created.
func (s *ExecutionState) BaseDir() string { return s.baseDir }

// errNotActive is the guard failure for action-only primitives.
func errNotActive(label string) error {
	return fmt.Errorf("%s can only be used inside actions().", label)
}

// ActionScope pairs one action invocation with a working-directory snapshot.
// Close restores the snapshot unconditionally, so a failing action body can
// never leak a changed directory to its caller.
type ActionScope struct {
	state *ExecutionState
	// prevDir is the directory to restore on Close ("" = no change was made).
	prevDir string
	closed  bool
}

// StartScope opens the top-level scope for a task run. The target directory
// is the task's working directory, or the base directory when the task
// declared none.
func StartScope(state *ExecutionState, taskWorkingDir string) (*ActionScope, error) {
	return start(state, taskWorkingDir)
}

// StartNestedScope opens a scope for a nested invocation. It requires an
// already-active state: this is the guard behind trigger(), which must only
// ever be reachable from within a running action.
func StartNestedScope(state *ExecutionState, label, taskWorkingDir string) (*ActionScope, error) {
	if !state.IsActive() {
		return nil, errNotActive(label)
	}
	return start(state, taskWorkingDir)
}

func start(state *ExecutionState, taskWorkingDir string) (*ActionScope, error) {
	target := taskWorkingDir
	if target == "" {
		target = state.baseDir
	}

	current, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	scope := &ActionScope{state: state}
	if current != target {
		if err := os.Chdir(target); err != nil {
			return nil, fmt.Errorf("failed to change directory to %s: %w", target, err)
		}
		scope.prevDir = current
	}

	state.depth++
	return scope, nil
}

// Close pops the scope and restores the directory snapshot taken at entry.
// It is idempotent so it can sit in a defer next to explicit error paths.
func (sc *ActionScope) Close() {
	if sc.closed {
		return
	}
	sc.closed = true
	sc.state.depth--
	if sc.prevDir != "" {
		// Restore errors are not actionable mid-unwind; the next scope up
		// restores its own snapshot regardless.
		_ = os.Chdir(sc.prevDir)
	}
}
