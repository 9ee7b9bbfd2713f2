// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"rhask-cli/internal/ui"
	"rhask-cli/pkg/task"
)

// Engine owns the registry, the build stack that populates it, and the
// execution state for a run. It is single-owner state: the CLI constructs
// one Engine, loads one rhaskfile into it, and runs tasks sequentially.
type Engine struct {
	registry *task.Registry
	stack    *task.BuildStack
	state    *ExecutionState
	printer  *ui.Printer

	stdin          io.Reader
	stdout, stderr io.Writer
}

// New creates an Engine with an empty registry. The base directory for
// execution scopes is captured here, once.
func New(printer *ui.Printer) (*Engine, error) {
	state, err := NewExecutionState()
	if err != nil {
		return nil, err
	}
	return &Engine{
		registry: task.NewRegistry(),
		stack:    task.NewBuildStack(),
		state:    state,
		printer:  printer,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}, nil
}

// SetIO redirects the streams shell steps run with. Tests use this; the CLI
// keeps the defaults.
func (e *Engine) SetIO(stdin io.Reader, stdout, stderr io.Writer) {
	e.stdin, e.stdout, e.stderr = stdin, stdout, stderr
}

// Registry exposes the loaded registry to the CLI layer (listing,
// completion). Callers must treat it as read-only.
func (e *Engine) Registry() *task.Registry { return e.registry }

// DefaultTask returns the document's default task, if one was declared.
func (e *Engine) DefaultTask() (string, bool) { return e.registry.DefaultTask() }

// RunTask resolves name, binds rawArgs against the declared parameters, and
// invokes the task's action inside a fresh execution scope.
//
// An unknown or ambiguous name is a user-facing warning, not an error: the
// outcome is reported and the run ends successfully. Binding failures and
// action failures are errors and propagate to the caller.
func (e *Engine) RunTask(ctx context.Context, name string, rawArgs []string) error {
	lookup := e.registry.ResolveTask(name)
	switch lookup.Kind {
	case task.LookupNotFound:
		e.printer.Warnf("Task '%s' does not exist.", name)
		return nil
	case task.LookupAmbiguous:
		e.reportAmbiguous(name, lookup.Candidates)
		return nil
	}

	// Bind before the actions check: invalid arguments fail the run even
	// when there is no action body to receive them.
	t, _ := e.registry.Task(lookup.FullPath)
	bound, err := task.PrepareArgumentsFromCLI(e.registry, lookup.FullPath, rawArgs)
	if err != nil {
		return err
	}

	if t.Actions == nil {
		e.printer.Warnf("Task '%s' has no actions() registered.", lookup.FullPath)
		return nil
	}

	scope, err := StartScope(e.state, t.WorkingDir)
	if err != nil {
		return err
	}
	defer scope.Close()

	return t.Actions.Invoke(ctx, bound)
}

// Trigger invokes another task from within a running action. Unlike RunTask,
// an unknown or ambiguous target is an error here: it fails the triggering
// action and unwinds its scopes. A target without actions is still only a
// warning, matching the top-level behavior.
func (e *Engine) Trigger(ctx context.Context, name string, positional []string, named *task.NamedArgs) error {
	if !e.state.IsActive() {
		return errNotActive("trigger()")
	}

	lookup := e.registry.ResolveTask(name)
	switch lookup.Kind {
	case task.LookupNotFound:
		return fmt.Errorf("Task '%s' does not exist.", name)
	case task.LookupAmbiguous:
		return fmt.Errorf("Task '%s' matches multiple candidates: %s. Please use the fully-qualified name.",
			name, strings.Join(lookup.Candidates, ", "))
	}

	t, _ := e.registry.Task(lookup.FullPath)
	bound, err := task.PrepareArgumentsFromParts(e.registry, lookup.FullPath, positional, named)
	if err != nil {
		return err
	}

	if t.Actions == nil {
		e.printer.Warnf("Task '%s' has no actions() registered.", lookup.FullPath)
		return nil
	}

	scope, err := StartNestedScope(e.state, "trigger()", t.WorkingDir)
	if err != nil {
		return err
	}
	defer scope.Close()

	return t.Actions.Invoke(ctx, bound)
}

func (e *Engine) reportAmbiguous(name string, candidates []string) {
	e.printer.Warnf("Task '%s' matches multiple candidates:", name)
	for _, candidate := range candidates {
		e.printer.Warnf("  - %s", candidate)
	}
	e.printer.Warnf("Please use the fully-qualified name (e.g. parent.child).")
}
