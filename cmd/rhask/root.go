// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rhask.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rhask-cli/internal/ui"
	"rhask-cli/pkg/task"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// fileFlag overrides rhaskfile discovery with an explicit path.
	fileFlag string
	// verbose enables diagnostic logging.
	verbose bool
	// noColor disables styled output.
	noColor bool

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "rhask [task] [args...]",
		Short: "A hierarchical task runner",
		Long: ui.GroupStyle.Render("rhask") + ui.DescriptionStyle.Render(" - A hierarchical task runner") + `

rhask runs tasks declared in a 'rhaskfile.cue' document. Tasks nest
inside groups and are addressed by dot-separated paths; an unambiguous
leaf name works as shorthand. The rhaskfile is discovered by walking up
from the current directory.

` + ui.DescriptionStyle.Render("Examples:") + `
  rhask                        Run the default task, or list everything
  rhask build x86_64           Run 'build' with a positional argument
  rhask ops.deploy --env prod  Run a nested task with a named argument
  rhask list ops               List the tasks under the 'ops' group`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if name, ok := rt.engine.DefaultTask(); ok {
					return wrapRunError(rt.engine.RunTask(cmd.Context(), name, nil))
				}
				rt.printer.PrintList(rt.engine.Registry().CollectListOutput(""), task.ListRenderTree)
				return nil
			}
			return wrapRunError(rt.engine.RunTask(cmd.Context(), args[0], args[1:]))
		},
		ValidArgsFunction: completeTaskNames,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	// Task arguments like "-v" must reach the task, not the root flag set.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "rhaskfile to load (default: walk up from the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(completeTasksCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initLogging configures the diagnostic logger from the --verbose flag.
// Warnings and task output never go through the logger; it carries only
// load/dispatch diagnostics.
func initLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
