// SPDX-License-Identifier: MPL-2.0

package task

import (
	"sort"
	"strings"
)

// LookupKind discriminates the outcomes of a name resolution.
type LookupKind int

const (
	// LookupNotFound means no task/group matched the identifier.
	LookupNotFound LookupKind = iota
	// LookupFound means the identifier resolved to exactly one entry.
	LookupFound
	// LookupAmbiguous means a leaf-name shorthand matched two or more entries.
	LookupAmbiguous
)

// Lookup is the result of resolving a user-typed identifier.
type Lookup struct {
	Kind LookupKind
	// FullPath is set when Kind is LookupFound.
	FullPath string
	// Candidates holds every matching full path, sorted lexicographically,
	// when Kind is LookupAmbiguous.
	Candidates []string
}

// ResolveTask maps a user-typed identifier to a finalized task.
//
// Resolution order: exact full-path match first; a dotted identifier that
// misses is treated as fully qualified and never falls back to leaf matching;
// otherwise every task whose leaf name equals the identifier is collected,
// and ambiguity is surfaced rather than silently resolved.
func (r *Registry) ResolveTask(identifier string) Lookup {
	return resolve(identifier, r.taskPaths, r.ContainsTask)
}

// ResolveGroup resolves a group identifier with the same algorithm as
// ResolveTask. It is used only by listing.
func (r *Registry) ResolveGroup(identifier string) Lookup {
	return resolve(identifier, r.groupPaths, r.ContainsGroup)
}

func resolve(identifier string, paths []string, contains func(string) bool) Lookup {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return Lookup{Kind: LookupNotFound}
	}

	if contains(trimmed) {
		return Lookup{Kind: LookupFound, FullPath: trimmed}
	}

	// Dotted identifiers are already fully qualified; no leaf fallback.
	if strings.Contains(trimmed, ".") {
		return Lookup{Kind: LookupNotFound}
	}

	var matches []string
	for _, path := range paths {
		if leafName(path) == trimmed {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		return Lookup{Kind: LookupNotFound}
	case 1:
		return Lookup{Kind: LookupFound, FullPath: matches[0]}
	default:
		sort.Strings(matches)
		return Lookup{Kind: LookupAmbiguous, Candidates: matches}
	}
}
