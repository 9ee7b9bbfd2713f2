// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"rhask-cli/pkg/rhaskfile"
	"rhask-cli/pkg/task"
)

// scriptAction is the Action implementation behind every task declared in a
// rhaskfile: an ordered list of steps, each either a shell snippet or a
// trigger of another task.
type scriptAction struct {
	engine *Engine
	steps  []rhaskfile.Step
	// params holds the declared parameter names in binding order (sorted by
	// name, matching the order the bound values arrive in).
	params []string
}

func newScriptAction(e *Engine, steps []rhaskfile.Step, args map[string]*string) *scriptAction {
	params := make([]string, 0, len(args))
	for name := range args {
		params = append(params, name)
	}
	sort.Strings(params)
	return &scriptAction{engine: e, steps: steps, params: params}
}

// Invoke runs the steps in order. The first failing step aborts the rest.
func (a *scriptAction) Invoke(ctx context.Context, args []string) error {
	for i := range a.steps {
		step := &a.steps[i]
		if step.IsRun() {
			if err := a.runShell(ctx, step.Run, args); err != nil {
				return err
			}
			continue
		}

		named := task.NewNamedArgs()
		for _, key := range sortedKeys(step.Set) {
			named.Set(key, step.Set[key])
		}
		if err := a.engine.Trigger(ctx, step.Trigger, step.With, named); err != nil {
			return err
		}
	}
	return nil
}

// runShell parses and executes one shell snippet. Bound argument values are
// exposed both as positional parameters ($1..$n, in binding order) and as
// RHASK_ARG_<NAME> environment variables. The snippet inherits the process
// working directory, which the active scope has already pointed at the
// task's directory.
func (a *scriptAction) runShell(ctx context.Context, snippet string, args []string) error {
	if !a.engine.state.IsActive() {
		return errNotActive("exec()")
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(snippet), "actions")
	if err != nil {
		return fmt.Errorf("failed to parse action step: %w", err)
	}

	env := os.Environ()
	for i, name := range a.params {
		if i < len(args) {
			env = append(env, argEnvName(name)+"="+args[i])
		}
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(a.engine.stdin, a.engine.stdout, a.engine.stderr),
	}
	// Prepend "--" so values like "-v" are not taken for shell options.
	if len(args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, args...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}
	return runner.Run(ctx, prog)
}

// argEnvName maps a parameter name to its environment variable form:
// uppercase with dashes folded to underscores (profile -> RHASK_ARG_PROFILE).
func argEnvName(param string) string {
	name := strings.ToUpper(strings.ReplaceAll(param, "-", "_"))
	return "RHASK_ARG_" + name
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
