// SPDX-License-Identifier: MPL-2.0

// Package config loads tool-level configuration: the rhaskfile path override,
// verbosity, and color handling. Values come from an optional config file in
// the platform config directory, RHASK_* environment variables, and flag
// bindings, in rising precedence order.
package config
