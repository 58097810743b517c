// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for unifetch.
//
// The central type is [Command], a named command with optional nested
// [Command.Subcommands], a [pflag.FlagSet] factory, and a Run function.
// The tree is assembled in cmd/unifetch/commands and dispatched via
// [Command.Execute], which handles flag parsing, environment defaults,
// subcommand routing, and help output with examples.
//
// Unknown subcommands and flags are answered with the closest known
// name by Levenshtein distance (at most 3).
//
// Flags are declared as tagged fields of a params struct and bound
// with [FlagsFromParams]. [Command.Env] maps flag names to environment
// variables whose values become the flag defaults; explicit flags
// still win.
//
// Report output is rendered in one of the [Format] values; the machine
// formats share [WriteFormatted].
package cli
