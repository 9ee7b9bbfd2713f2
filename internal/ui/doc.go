// SPDX-License-Identifier: MPL-2.0

// Package ui renders user-facing output: styled info/warning/error lines and
// the task listing in tree or flat form. All styling goes through a shared
// palette so the CLI looks consistent, and honors a no-color switch.
package ui
