// SPDX-License-Identifier: MPL-2.0

package task

import (
	"errors"
	"fmt"
	"strings"
)

// The error values in this file carry the exact diagnostics shown to
// rhaskfile authors, so their text keeps the script-facing capitalization and
// punctuation rather than Go error-string conventions.

// Fixed-text construction and guard diagnostics.
var (
	// ErrEmptyTaskName is returned by BeginTask when the name trims to empty.
	ErrEmptyTaskName = errors.New("Task name cannot be empty.")
	// ErrEmptyGroupName is returned by BeginGroup when the name trims to empty.
	ErrEmptyGroupName = errors.New("Group name cannot be empty.")
	// ErrNestedTask is returned when task() or group() opens while a task
	// scope is already open.
	ErrNestedTask = errors.New("Nested task() calls are not supported.")

	// ErrEndTaskInsideGroup is returned by EndTask while a group scope is open.
	ErrEndTaskInsideGroup = errors.New("context mismatch: end_task() called while inside group().")
	// ErrEndTaskWithoutBegin is returned by EndTask at root scope.
	ErrEndTaskWithoutBegin = errors.New("context mismatch: end_task() called before task() was started.")
	// ErrEndGroupInsideTask is returned by EndGroup while a task scope is open.
	ErrEndGroupInsideTask = errors.New("context mismatch: task() scope was not closed before ending group().")
	// ErrEndGroupWithoutBegin is returned by EndGroup at root scope.
	ErrEndGroupWithoutBegin = errors.New("context mismatch: end_group() called before group() was started.")

	// ErrActionsOutsideTask is returned by SetActions outside a task scope.
	ErrActionsOutsideTask = errors.New("actions() can only be used inside task(). Call task() first.")
	// ErrArgsOutsideTask is returned by SetArgs outside a task scope.
	ErrArgsOutsideTask = errors.New("args() can only be used inside task().")
	// ErrDescriptionOutsideScope is returned by SetDescription at root scope.
	ErrDescriptionOutsideScope = errors.New("description() can only be used inside task() or group().")
	// ErrDirOutsideTask is returned by SetDirectory outside a task scope.
	ErrDirOutsideTask = errors.New("dir() can only be used inside task().")
	// ErrDirAlreadySet is returned by a second SetDirectory in one task scope.
	ErrDirAlreadySet = errors.New("dir() can only be defined once per task().")
	// ErrDirBeforeRoot is returned when a relative dir() is declared before
	// the rhaskfile root directory has been recorded.
	ErrDirBeforeRoot = errors.New("dir() cannot be used before the rhaskfile root is known.")
	// ErrEmptyDir is returned when dir() receives a path that trims to empty.
	ErrEmptyDir = errors.New("dir() cannot be empty.")

	// ErrEmptyDefaultTask is returned when default_task() trims to empty.
	ErrEmptyDefaultTask = errors.New("default_task() cannot be empty.")
	// ErrDefaultTaskAlreadySet is returned when default_task() is called a
	// second time anywhere in the script.
	ErrDefaultTaskAlreadySet = errors.New("default_task() is already defined.")
)

// Argument-binding sentinels, wrapped by the typed errors below.
var (
	// ErrArgNameRequired is returned for a bare "--" token.
	ErrArgNameRequired = errors.New("Argument name required after '--'.")
	// ErrArgNameEmpty is returned for a key=value token with an empty key.
	ErrArgNameEmpty = errors.New("Argument name cannot be empty.")
	// ErrMissingOptionValue is the sentinel wrapped by MissingOptionValueError.
	ErrMissingOptionValue = errors.New("option is missing a value")
	// ErrMissingArgument is the sentinel wrapped by MissingArgumentError.
	ErrMissingArgument = errors.New("required argument is missing")
	// ErrUnknownArguments is the sentinel wrapped by UnknownArgumentsError.
	ErrUnknownArguments = errors.New("unknown named arguments")
	// ErrUnexpectedPositional is the sentinel wrapped by UnexpectedPositionalError.
	ErrUnexpectedPositional = errors.New("unexpected positional argument")
	// ErrNoArgumentsAccepted is the sentinel wrapped by NoArgumentsAcceptedError.
	ErrNoArgumentsAccepted = errors.New("task does not accept arguments")
	// ErrDuplicatePath is the sentinel wrapped by DuplicatePathError.
	ErrDuplicatePath = errors.New("path is already defined")
	// ErrNotDirectory is the sentinel wrapped by NotDirectoryError.
	ErrNotDirectory = errors.New("path is not a directory")
)

type (
	// DuplicatePathError reports a task/group path collision during
	// construction. Kind is the kind being declared; AsOther marks a
	// collision with the opposite kind.
	DuplicatePathError struct {
		Kind    EntryKind
		Path    string
		AsOther bool
	}

	// MissingOptionValueError reports a "--name" option with no value token.
	MissingOptionValueError struct {
		Name string
	}

	// MissingArgumentError reports a declared parameter with no bound value
	// and no default.
	MissingArgumentError struct {
		Name string
	}

	// UnknownArgumentsError reports named arguments left unconsumed after
	// every declared parameter was bound.
	UnknownArgumentsError struct {
		Names []string
	}

	// UnexpectedPositionalError reports the first positional value left
	// unconsumed after binding.
	UnexpectedPositionalError struct {
		Value string
	}

	// NoArgumentsAcceptedError reports arguments supplied to a task that
	// declares no parameters.
	NoArgumentsAcceptedError struct {
		Task string
	}

	// NotDirectoryError reports a dir() path that exists but is not a
	// directory.
	NotDirectoryError struct {
		Path string
	}
)

func (e *DuplicatePathError) Error() string {
	switch {
	case e.Kind == KindTask && e.AsOther:
		return fmt.Sprintf("Task '%s' is already defined as a group.", e.Path)
	case e.Kind == KindTask:
		return fmt.Sprintf("Task '%s' is already defined.", e.Path)
	case e.AsOther:
		return fmt.Sprintf("Group '%s' is already defined as a task.", e.Path)
	default:
		return fmt.Sprintf("Group '%s' is already defined.", e.Path)
	}
}

// Unwrap returns ErrDuplicatePath for errors.Is compatibility.
func (e *DuplicatePathError) Unwrap() error { return ErrDuplicatePath }

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("Option '--%s' is missing a value.", e.Name)
}

func (e *MissingOptionValueError) Unwrap() error { return ErrMissingOptionValue }

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("Argument '%s' is missing.", e.Name)
}

func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }

func (e *UnknownArgumentsError) Error() string {
	return fmt.Sprintf("Unknown argument(s): %s", strings.Join(e.Names, ", "))
}

func (e *UnknownArgumentsError) Unwrap() error { return ErrUnknownArguments }

func (e *UnexpectedPositionalError) Error() string {
	return fmt.Sprintf("Unexpected positional argument '%s' provided.", e.Value)
}

func (e *UnexpectedPositionalError) Unwrap() error { return ErrUnexpectedPositional }

func (e *NoArgumentsAcceptedError) Error() string {
	return fmt.Sprintf("Task '%s' does not accept arguments.", e.Task)
}

func (e *NoArgumentsAcceptedError) Unwrap() error { return ErrNoArgumentsAccepted }

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("dir(): '%s' is not a directory.", e.Path)
}

func (e *NotDirectoryError) Unwrap() error { return ErrNotDirectory }
