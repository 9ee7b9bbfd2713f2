// SPDX-License-Identifier: MPL-2.0

// Package rhaskfile defines the rhaskfile.cue document format and its parser.
//
// A rhaskfile declares an ordered tree of tasks and groups. The package
// embeds a CUE schema and parses documents with the 3-step flow: compile the
// schema, compile the user document and unify the two, then validate
// concretely and decode into the Go document types. Structural rules the
// schema cannot express (an entry is exactly one of task or group, steps are
// exactly one of run or trigger) are enforced in Go after decoding.
//
// The package knows nothing about registries or execution; the engine layer
// replays a parsed document through the task build stack.
package rhaskfile
