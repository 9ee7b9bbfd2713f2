// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// completeTasksCmd backs external completion scripts: it prints every task
// and group path, sorted and deduplicated, optionally filtered by prefix.
// Hidden because it is plumbing, not a user-facing command.
var completeTasksCmd = &cobra.Command{
	Use:    "complete-tasks [prefix]",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		r := rt.engine.Registry()
		seen := make(map[string]struct{})
		var paths []string
		for _, path := range append(r.TaskPaths(), r.GroupPaths()...) {
			if !strings.HasPrefix(path, prefix) {
				continue
			}
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
		sort.Strings(paths)

		for _, path := range paths {
			rt.printer.Infof("%s", path)
		}
		return nil
	},
}
