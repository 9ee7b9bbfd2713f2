// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"fmt"
	"path/filepath"

	"rhask-cli/pkg/rhaskfile"
	"rhask-cli/pkg/task"
)

// Load parses the rhaskfile at path and loads it into the registry.
func (e *Engine) Load(path string) error {
	rf, err := rhaskfile.Parse(path)
	if err != nil {
		return err
	}
	return e.LoadDocument(rf)
}

// LoadDocument replays a parsed document through a fresh build stack,
// producing the finalized registry. The previous registry, if any, is
// discarded first: loading is a whole-document, single-pass affair.
func (e *Engine) LoadDocument(rf *rhaskfile.Rhaskfile) error {
	e.registry = task.NewRegistry()
	e.stack.Reset()

	if rf.FilePath != "" {
		abs, err := filepath.Abs(rf.FilePath)
		if err != nil {
			return fmt.Errorf("failed to resolve rhaskfile path %s: %w", rf.FilePath, err)
		}
		e.stack.SetScriptRoot(filepath.Dir(abs))
	}

	for i := range rf.Entries {
		if err := e.loadEntry(&rf.Entries[i]); err != nil {
			return err
		}
	}

	if rf.DefaultTask != "" {
		if err := e.registry.SetDefaultTask(rf.DefaultTask); err != nil {
			return err
		}
	}
	return nil
}

// loadEntry drives the build stack callbacks for one declaration, depth
// first. The stack enforces every structural rule (duplicate paths, nesting,
// dir-once), so errors here are surfaced verbatim.
func (e *Engine) loadEntry(entry *rhaskfile.Entry) error {
	if entry.IsGroup() {
		if err := e.stack.BeginGroup(e.registry, entry.Group); err != nil {
			return err
		}
		if entry.Description != "" {
			if err := e.stack.SetDescription(entry.Description); err != nil {
				return err
			}
		}
		for i := range entry.Entries {
			if err := e.loadEntry(&entry.Entries[i]); err != nil {
				return err
			}
		}
		return e.stack.EndGroup(e.registry)
	}

	if err := e.stack.BeginTask(e.registry, entry.Task); err != nil {
		return err
	}
	if entry.Description != "" {
		if err := e.stack.SetDescription(entry.Description); err != nil {
			return err
		}
	}
	if entry.Dir != "" {
		if err := e.stack.SetDirectory(entry.Dir); err != nil {
			return err
		}
	}
	if entry.Args != nil {
		if err := e.stack.SetArgs(entry.Args); err != nil {
			return err
		}
	}
	if len(entry.Actions) > 0 {
		if err := e.stack.SetActions(newScriptAction(e, entry.Actions, entry.Args)); err != nil {
			return err
		}
	}
	return e.stack.EndTask(e.registry)
}
