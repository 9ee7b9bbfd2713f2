// SPDX-License-Identifier: MPL-2.0

package task

import (
	"fmt"
	"strings"
)

// NamedArgs is an insertion-ordered collection of named argument values.
// Later Set calls sharing a key overwrite the value but keep the key's
// original position, so diagnostics enumerate keys in first-seen order.
type NamedArgs struct {
	keys   []string
	values map[string]string
}

// NewNamedArgs returns an empty NamedArgs.
func NewNamedArgs() *NamedArgs {
	return &NamedArgs{values: make(map[string]string)}
}

// Set stores value under key, preserving the key's first insertion position.
func (n *NamedArgs) Set(key, value string) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// Get returns the value stored under key.
func (n *NamedArgs) Get(key string) (string, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Len returns the number of stored keys.
func (n *NamedArgs) Len() int { return len(n.keys) }

// Keys returns the stored keys in insertion order.
func (n *NamedArgs) Keys() []string { return append([]string(nil), n.keys...) }

func (n *NamedArgs) remove(key string) (string, bool) {
	v, ok := n.values[key]
	if !ok {
		return "", false
	}
	delete(n.values, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return v, true
}

func (n *NamedArgs) clone() *NamedArgs {
	c := NewNamedArgs()
	for _, k := range n.keys {
		c.Set(k, n.values[k])
	}
	return c
}

// ParseCLIArguments splits raw command-line tokens into positional values and
// named key/value pairs.
//
// Token forms: "--key=value" and "key=value" bind directly; "--key value"
// consumes the next token when it exists, is non-empty, does not itself start
// with "--", and does not contain "="; anything else is positional.
func ParseCLIArguments(rawArgs []string) ([]string, *NamedArgs, error) {
	var positional []string
	named := NewNamedArgs()

	for i := 0; i < len(rawArgs); i++ {
		arg := rawArgs[i]
		if rest, ok := strings.CutPrefix(arg, "--"); ok {
			if rest == "" {
				return nil, nil, ErrArgNameRequired
			}
			var key, value string
			if k, v, found := strings.Cut(rest, "="); found {
				key, value = k, v
			} else if i+1 < len(rawArgs) && rawArgs[i+1] != "" &&
				!strings.HasPrefix(rawArgs[i+1], "--") && !strings.Contains(rawArgs[i+1], "=") {
				i++
				key, value = rest, rawArgs[i]
			} else {
				return nil, nil, &MissingOptionValueError{Name: rest}
			}
			if key == "" {
				return nil, nil, ErrArgNameEmpty
			}
			named.Set(key, value)
			continue
		}
		if key, value, found := strings.Cut(arg, "="); found {
			if key == "" {
				return nil, nil, ErrArgNameEmpty
			}
			named.Set(key, value)
			continue
		}
		positional = append(positional, arg)
	}

	return positional, named, nil
}

// PrepareArgumentsFromCLI tokenizes rawArgs and binds them against the
// declared parameters of the task at fullPath.
func PrepareArgumentsFromCLI(r *Registry, fullPath string, rawArgs []string) ([]string, error) {
	positional, named, err := ParseCLIArguments(rawArgs)
	if err != nil {
		return nil, err
	}
	return PrepareArgumentsFromParts(r, fullPath, positional, named)
}

// PrepareArgumentsFromParts binds already-split positional and named values
// against the declared parameters of the task at fullPath, returning one
// value per parameter in declared (sorted) order.
//
// Named values bind by exact key match and always win over positional values
// for the same slot; remaining slots consume positional values in order, then
// fall back to declared defaults. Leftover positional values or named keys
// are errors.
func PrepareArgumentsFromParts(r *Registry, fullPath string, positional []string, named *NamedArgs) ([]string, error) {
	t, ok := r.Task(fullPath)
	if !ok {
		return nil, fmt.Errorf("internal error: task '%s' not found", fullPath)
	}

	if named == nil {
		named = NewNamedArgs()
	}

	if len(t.Params) == 0 {
		if len(positional) == 0 && named.Len() == 0 {
			return nil, nil
		}
		return nil, &NoArgumentsAcceptedError{Task: fullPath}
	}

	remaining := named.clone()
	values := make([]string, 0, len(t.Params))
	next := 0

	for _, spec := range t.Params {
		if v, ok := remaining.remove(spec.Name); ok {
			values = append(values, v)
			continue
		}
		if next < len(positional) {
			values = append(values, positional[next])
			next++
			continue
		}
		if spec.HasDefault {
			values = append(values, spec.Default)
			continue
		}
		return nil, &MissingArgumentError{Name: spec.Name}
	}

	if next < len(positional) {
		return nil, &UnexpectedPositionalError{Value: positional[next]}
	}
	if remaining.Len() > 0 {
		return nil, &UnknownArgumentsError{Names: remaining.Keys()}
	}

	return values, nil
}
