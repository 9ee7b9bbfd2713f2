// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd is the explicit form of task invocation. The bare "rhask <task>"
// form dispatches through the root command; this one exists so scripts can
// spell out intent and so completion has a stable anchor.
var runCmd = &cobra.Command{
	Use:   "run TASK [args...]",
	Short: "Run a task by name or dot-separated path",
	Long: `Run a task with optional arguments.

Arguments bind to the task's declared parameters: named values are given
as '--name value', '--name=value', or 'name=value'; everything else fills
the remaining parameters in order. Parameters without a bound value fall
back to their declared default.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		return wrapRunError(rt.engine.RunTask(cmd.Context(), args[0], args[1:]))
	},
	ValidArgsFunction: completeTaskNames,
}

func init() {
	// Leave "--profile=release" and friends for the argument binder.
	runCmd.Flags().SetInterspersed(false)
}

// completeTaskNames offers task paths (with descriptions) for the first
// argument; later arguments belong to the task.
func completeTaskNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	rt, err := newRuntime()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, path := range rt.engine.Registry().TaskPaths() {
		entry := path
		if t, ok := rt.engine.Registry().Task(path); ok && t.Description != "" {
			entry += "\t" + t.Description
		}
		completions = append(completions, entry)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
