// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"rhask-cli/pkg/task"
)

// flatFlag switches the listing from the declaration tree to one
// fully-qualified task path per line.
var flatFlag bool

var listCmd = &cobra.Command{
	Use:     "list [group]",
	Aliases: []string{"ls"},
	Short:   "List tasks and groups",
	Long: `List the declared tasks and groups in declaration order.

With a group argument, only that group's subtree is listed; the group
name resolves with the same shorthand rules as task names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		group := ""
		if len(args) == 1 {
			group = args[0]
		}

		mode := task.ListRenderTree
		if flatFlag {
			mode = task.ListRenderFlat
		}
		rt.printer.PrintList(rt.engine.Registry().CollectListOutput(group), mode)
		return nil
	},
	ValidArgsFunction: completeGroupNames,
}

func init() {
	listCmd.Flags().BoolVar(&flatFlag, "flat", false, "list fully-qualified task paths, one per line")
}

func completeGroupNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	rt, err := newRuntime()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, path := range rt.engine.Registry().GroupPaths() {
		entry := path
		if g, ok := rt.engine.Registry().Group(path); ok && g.Description != "" {
			entry += "\t" + g.Description
		}
		completions = append(completions, entry)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
