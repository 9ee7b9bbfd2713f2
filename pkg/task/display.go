// SPDX-License-Identifier: MPL-2.0

package task

import "fmt"

// ListRenderMode selects how a listing is rendered by the CLI layer.
type ListRenderMode int

const (
	// ListRenderTree renders the declaration hierarchy with indentation.
	ListRenderTree ListRenderMode = iota
	// ListRenderFlat renders only tasks, one fully-qualified path per line.
	ListRenderFlat
)

// ListItemKind discriminates listing rows.
type ListItemKind int

const (
	// ListItemGroup marks a group row.
	ListItemGroup ListItemKind = iota
	// ListItemTask marks a task row.
	ListItemTask
)

// ListMessageLevel classifies listing diagnostics.
type ListMessageLevel int

const (
	// ListMessageInfo is informational.
	ListMessageInfo ListMessageLevel = iota
	// ListMessageWarn signals a recoverable problem, e.g. an unknown group.
	ListMessageWarn
)

type (
	// ListItem is one row of a listing, in declaration order.
	ListItem struct {
		Kind ListItemKind
		// Depth is the nesting depth under the listing root.
		Depth int
		// Name is the leaf name shown in tree mode.
		Name string
		// Path is the full path shown in flat mode.
		Path string
		// Description is the declared description ("" = none).
		Description string
	}

	// ListMessage is a diagnostic emitted while building a listing.
	ListMessage struct {
		Level ListMessageLevel
		Text  string
	}

	// ListOutput is the renderer-agnostic result of a listing request; the
	// CLI layer consumes it unchanged.
	ListOutput struct {
		Items    []ListItem
		Messages []ListMessage
	}
)

// CollectListOutput builds the listing for a group filter ("" lists the whole
// registry). Group shorthand resolves like task shorthand; ambiguity and
// misses surface as messages instead of items.
func (r *Registry) CollectListOutput(group string) ListOutput {
	var out ListOutput

	if group != "" {
		lookup := r.ResolveGroup(group)
		switch lookup.Kind {
		case LookupFound:
			r.collectGroup(lookup.FullPath, 0, &out)
		case LookupAmbiguous:
			out.warnf("Group '%s' matches multiple candidates:", group)
			for _, candidate := range lookup.Candidates {
				out.warnf("  - %s", candidate)
			}
			out.warnf("Please use the fully-qualified name (e.g. parent.child).")
		default:
			out.warnf("Group '%s' does not exist.", group)
		}
		return out
	}

	for _, entry := range r.rootEntries {
		r.collectEntry(entry, 0, &out)
	}
	return out
}

func (r *Registry) collectEntry(entry RegistryEntry, depth int, out *ListOutput) {
	if entry.Kind == KindTask {
		r.collectTask(entry.Path, depth, out)
	} else {
		r.collectGroup(entry.Path, depth, out)
	}
}

func (r *Registry) collectTask(fullPath string, depth int, out *ListOutput) {
	item := ListItem{Kind: ListItemTask, Depth: depth, Name: leafName(fullPath), Path: fullPath}
	if t, ok := r.tasks[fullPath]; ok {
		item.Description = t.Description
	}
	out.Items = append(out.Items, item)
}

func (r *Registry) collectGroup(fullPath string, depth int, out *ListOutput) {
	item := ListItem{Kind: ListItemGroup, Depth: depth, Name: leafName(fullPath), Path: fullPath}
	g, ok := r.groups[fullPath]
	if ok {
		item.Description = g.Description
	}
	out.Items = append(out.Items, item)
	if !ok {
		return
	}
	for _, entry := range g.Entries {
		r.collectEntry(entry, depth+1, out)
	}
}

func (o *ListOutput) warnf(format string, args ...any) {
	o.Messages = append(o.Messages, ListMessage{
		Level: ListMessageWarn,
		Text:  fmt.Sprintf(format, args...),
	})
}
