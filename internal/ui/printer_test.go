// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhask-cli/pkg/task"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)
	p.SetNoColor(true)
	return p, &out, &errOut
}

func TestPrinterStreams(t *testing.T) {
	p, out, errOut := newTestPrinter()

	p.Infof("loaded %d tasks", 3)
	p.Warnf("Task '%s' does not exist.", "ghost")
	p.Errorf("boom")

	assert.Equal(t, "loaded 3 tasks\n", out.String())
	assert.Equal(t, "Task 'ghost' does not exist.\nboom\n", errOut.String())
}

func TestRenderItemsTree(t *testing.T) {
	p, _, _ := newTestPrinter()

	items := []task.ListItem{
		{Kind: task.ListItemGroup, Depth: 0, Name: "ops", Path: "ops", Description: "Operational tasks"},
		{Kind: task.ListItemTask, Depth: 1, Name: "deploy", Path: "ops.deploy", Description: "Ship it"},
		{Kind: task.ListItemTask, Depth: 0, Name: "build", Path: "build"},
	}

	got := p.RenderItems(items, task.ListRenderTree)
	want := "ops:  Operational tasks\n" +
		"  deploy  Ship it\n" +
		"build\n"
	assert.Equal(t, want, got)
}

func TestRenderItemsFlatSkipsGroups(t *testing.T) {
	p, _, _ := newTestPrinter()

	items := []task.ListItem{
		{Kind: task.ListItemGroup, Depth: 0, Name: "ops", Path: "ops"},
		{Kind: task.ListItemTask, Depth: 1, Name: "deploy", Path: "ops.deploy"},
	}

	got := p.RenderItems(items, task.ListRenderFlat)
	assert.Equal(t, "ops.deploy\n", got)
}

func TestPrintListMessagesGoToStderr(t *testing.T) {
	p, out, errOut := newTestPrinter()

	p.PrintList(task.ListOutput{
		Messages: []task.ListMessage{
			{Level: task.ListMessageWarn, Text: "Group 'x' does not exist."},
		},
	}, task.ListRenderTree)

	require.Empty(t, out.String())
	assert.Equal(t, "Group 'x' does not exist.\n", errOut.String())
}
