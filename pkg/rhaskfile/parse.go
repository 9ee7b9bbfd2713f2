// SPDX-License-Identifier: MPL-2.0

package rhaskfile

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var documentSchema string

// MaxFileSize is the maximum accepted document size (5MB). The limit keeps a
// runaway or malicious file from exhausting memory during CUE compilation.
const MaxFileSize int64 = 5 * 1024 * 1024

// Parse reads and parses the rhaskfile at the given path.
func Parse(path string) (*Rhaskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rhaskfile at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses rhaskfile content from bytes. The path is used only for
// error messages and the FilePath field.
//
// Parsing is the 3-step CUE flow: compile the embedded schema, compile the
// user document and unify it with #Rhaskfile, then validate concretely and
// decode. Go-level structural validation runs after decoding.
func ParseBytes(data []byte, path string) (*Rhaskfile, error) {
	if path == "" {
		path = "<input>"
	}
	if int64(len(data)) > MaxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			path, len(data), MaxFileSize)
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(documentSchema)
	if schema.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile rhaskfile schema: %w", schema.Err())
	}
	root := schema.LookupPath(cue.ParsePath("#Rhaskfile"))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition #Rhaskfile not found: %w", root.Err())
	}

	doc := ctx.CompileBytes(data, cue.Filename(path))
	if doc.Err() != nil {
		return nil, formatCUEError(doc.Err(), path)
	}

	unified := root.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, path)
	}

	var rf Rhaskfile
	if err := unified.Decode(&rf); err != nil {
		return nil, formatCUEError(err, path)
	}
	rf.FilePath = path

	if errs := rf.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", path, errs)
	}
	return &rf, nil
}

// formatCUEError rewrites a CUE error into "<file>: <json-path>: <message>"
// form so users see where in the document the problem is.
func formatCUEError(err error, path string) error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", path, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, ce := range cueErrs {
		loc := jsonPath(cueerrors.Path(ce))
		msg := ce.Error()
		// CUE sometimes repeats the path inside the message itself.
		if loc != "" && strings.HasPrefix(msg, loc) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, loc), ":"))
		}
		if loc != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", loc, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", path, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", path, strings.Join(lines, "\n  "))
}

// jsonPath renders a CUE error path (["entries", "0", "task"]) in JSON-path
// notation ("entries[0].task").
func jsonPath(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		if isIndex(part) && i > 0 {
			b.WriteString("[")
			b.WriteString(part)
			b.WriteString("]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
