// SPDX-License-Identifier: MPL-2.0

// Package task implements the registry core of rhask: the task/group data
// model, the construction-time build stack that turns rhaskfile evaluation
// into a finalized registry, name resolution (exact, dotted, and leaf-name
// shorthand), and command-line argument binding against declared parameters.
//
// The package is deliberately free of I/O and execution concerns: action
// bodies are stored behind the opaque Action interface and invoked by the
// engine layer, and all diagnostics are returned as errors whose text is the
// exact message shown to rhaskfile authors.
package task
