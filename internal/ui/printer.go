// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rhask-cli/pkg/task"
)

// Printer writes user-facing output. Informational output and listings go to
// out; warnings and errors go to errOut. A single Printer is shared by the
// engine and the CLI so every message passes through one styling path.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// NewPrinter returns a Printer writing to the given streams.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// SetNoColor disables all styling. Used by the --no-color flag and the
// RHASK_NO_COLOR config key.
func (p *Printer) SetNoColor(noColor bool) { p.noColor = noColor }

// Infof prints an informational line to stdout.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warnf prints a warning line to stderr. Warnings are user-facing outcomes
// (unknown task, ambiguous name), not failures: the process still exits zero.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.render(WarningStyle, fmt.Sprintf(format, args...)))
}

// Errorf prints an error line to stderr.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.render(ErrorStyle, fmt.Sprintf(format, args...)))
}

// PrintList renders a collected listing: warnings first, then the item rows
// in tree or flat form.
func (p *Printer) PrintList(out task.ListOutput, mode task.ListRenderMode) {
	for _, msg := range out.Messages {
		switch msg.Level {
		case task.ListMessageWarn:
			p.Warnf("%s", msg.Text)
		default:
			p.Infof("%s", msg.Text)
		}
	}

	if len(out.Items) == 0 {
		return
	}
	fmt.Fprint(p.out, p.RenderItems(out.Items, mode))
}

// RenderItems renders listing rows to a string. Tree mode indents by depth
// and shows leaf names; flat mode shows one fully-qualified path per line.
func (p *Printer) RenderItems(items []task.ListItem, mode task.ListRenderMode) string {
	var sb strings.Builder
	for _, item := range items {
		var name string
		if mode == task.ListRenderTree {
			sb.WriteString(strings.Repeat("  ", item.Depth))
			name = item.Name
		} else {
			if item.Kind == task.ListItemGroup {
				continue
			}
			name = item.Path
		}

		if item.Kind == task.ListItemGroup {
			sb.WriteString(p.render(GroupStyle, name+":"))
		} else {
			sb.WriteString(p.render(TaskStyle, name))
		}
		if item.Description != "" {
			sb.WriteString("  ")
			sb.WriteString(p.render(DescriptionStyle, item.Description))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if p.noColor {
		return text
	}
	return style.Render(text)
}
