// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/interp"

	"rhask-cli/internal/config"
	"rhask-cli/internal/engine"
	"rhask-cli/internal/ui"
	"rhask-cli/pkg/rhaskfile"
)

// runtime bundles everything a command handler needs: the loaded engine and
// the shared printer.
type runtime struct {
	engine  *engine.Engine
	printer *ui.Printer
	cfg     *config.Config
}

// newRuntime loads configuration, resolves the rhaskfile, and loads it into
// a fresh engine. Every command goes through here, so the precedence rules
// (flag over environment over config file) live in one place.
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	printer := ui.NewPrinter(os.Stdout, os.Stderr)
	printer.SetNoColor(noColor || cfg.NoColor)
	if cfg.Verbose {
		verbose = true
		log.SetLevel(log.DebugLevel)
	}

	path := fileFlag
	if path == "" {
		path = cfg.File
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = rhaskfile.Locate(wd)
		if err != nil {
			return nil, err
		}
	}

	e, err := engine.New(printer)
	if err != nil {
		return nil, err
	}
	if err := e.Load(path); err != nil {
		return nil, err
	}

	log.Debug("loaded rhaskfile",
		"path", path,
		"tasks", len(e.Registry().TaskPaths()),
		"groups", len(e.Registry().GroupPaths()))

	return &runtime{engine: e, printer: printer, cfg: cfg}, nil
}

// wrapRunError converts a shell exit status into an ExitError so the process
// exits with the task's code instead of a generic failure.
func wrapRunError(err error) error {
	if err == nil {
		return nil
	}
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return &ExitError{Code: int(status)}
	}
	return err
}
