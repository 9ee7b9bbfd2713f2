// SPDX-License-Identifier: MPL-2.0

// Package engine ties the registry core to the outside world. It loads a
// parsed rhaskfile into a task.Registry by replaying the document through the
// build stack, runs resolved tasks with bound arguments inside execution
// scopes, and executes shell action steps.
//
// The execution scope manager owns the one genuinely shared resource here:
// the process working directory. Scopes form a strict LIFO stack; each scope
// restores the exact directory it found on entry, even when the wrapped
// action fails.
package engine
