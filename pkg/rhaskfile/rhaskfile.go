// SPDX-License-Identifier: MPL-2.0

package rhaskfile

import (
	"fmt"
	"strings"
)

// RhaskfileName is the canonical document file name looked up during
// discovery.
const RhaskfileName = "rhaskfile.cue"

type (
	// Rhaskfile is a parsed rhaskfile.cue document.
	Rhaskfile struct {
		// DefaultTask names the task run on a bare invocation ("" = none).
		DefaultTask string `json:"default_task,omitempty"`

		// Entries are the top-level declarations, in document order.
		Entries []Entry `json:"entries"`

		// FilePath is the path the document was parsed from. Set by Parse,
		// not part of the document format.
		FilePath string `json:"-"`
	}

	// Entry is a single task or group declaration. Exactly one of Task and
	// Group is set; the remaining fields depend on which.
	Entry struct {
		Task  string `json:"task,omitempty"`
		Group string `json:"group,omitempty"`

		Description string `json:"description,omitempty"`

		// Task-only: working directory, parameter declarations (nil value =
		// required parameter), and ordered action steps.
		Dir     string             `json:"dir,omitempty"`
		Args    map[string]*string `json:"args,omitempty"`
		Actions []Step             `json:"actions,omitempty"`

		// Group-only: nested declarations, in document order.
		Entries []Entry `json:"entries,omitempty"`
	}

	// Step is one action step: either a shell snippet (Run) or a nested
	// task invocation (Trigger with optional With/Set arguments).
	Step struct {
		Run string `json:"run,omitempty"`

		Trigger string            `json:"trigger,omitempty"`
		With    []string          `json:"with,omitempty"`
		Set     map[string]string `json:"set,omitempty"`
	}
)

// IsGroup reports whether the entry declares a group.
func (e *Entry) IsGroup() bool { return e.Group != "" }

// IsRun reports whether the step is a shell step.
func (s *Step) IsRun() bool { return s.Run != "" }

type (
	// ValidationError reports one structural problem in a parsed document.
	ValidationError struct {
		// Path locates the offending value (e.g. "entries[1].actions[0]").
		Path string

		// Message describes the problem.
		Message string
	}

	// ValidationErrors collects every structural problem found in one pass.
	ValidationErrors []*ValidationError
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	lines := make([]string, 0, len(e))
	for _, ve := range e {
		lines = append(lines, ve.Error())
	}
	return fmt.Sprintf("validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// Validate checks the structural rules the CUE schema cannot express. It
// walks the whole document and collects every violation.
func (rf *Rhaskfile) Validate() ValidationErrors {
	var errs ValidationErrors
	for i := range rf.Entries {
		validateEntry(&rf.Entries[i], fmt.Sprintf("entries[%d]", i), &errs)
	}
	return errs
}

func validateEntry(e *Entry, path string, errs *ValidationErrors) {
	switch {
	case e.Task != "" && e.Group != "":
		*errs = append(*errs, &ValidationError{Path: path, Message: "entry sets both task and group"})
		return
	case e.Task == "" && e.Group == "":
		*errs = append(*errs, &ValidationError{Path: path, Message: "entry must set task or group"})
		return
	}

	if e.IsGroup() {
		if e.Dir != "" {
			*errs = append(*errs, &ValidationError{Path: path + ".dir", Message: "dir is only valid on tasks"})
		}
		if len(e.Args) > 0 {
			*errs = append(*errs, &ValidationError{Path: path + ".args", Message: "args is only valid on tasks"})
		}
		if len(e.Actions) > 0 {
			*errs = append(*errs, &ValidationError{Path: path + ".actions", Message: "actions is only valid on tasks"})
		}
		for i := range e.Entries {
			validateEntry(&e.Entries[i], fmt.Sprintf("%s.entries[%d]", path, i), errs)
		}
		return
	}

	if len(e.Entries) > 0 {
		*errs = append(*errs, &ValidationError{Path: path + ".entries", Message: "entries is only valid on groups"})
	}
	for i := range e.Actions {
		validateStep(&e.Actions[i], fmt.Sprintf("%s.actions[%d]", path, i), errs)
	}
}

func validateStep(s *Step, path string, errs *ValidationErrors) {
	switch {
	case s.Run != "" && s.Trigger != "":
		*errs = append(*errs, &ValidationError{Path: path, Message: "step sets both run and trigger"})
	case s.Run == "" && s.Trigger == "":
		*errs = append(*errs, &ValidationError{Path: path, Message: "step must set run or trigger"})
	}
	if s.Run != "" && (len(s.With) > 0 || len(s.Set) > 0) {
		*errs = append(*errs, &ValidationError{Path: path, Message: "with/set are only valid on trigger steps"})
	}
}
