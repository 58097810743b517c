// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/unifetch/unifetch/cmd/unifetch/commands"
	"github.com/unifetch/unifetch/lib/process"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like doctor) return an
		// error carrying the exit code; don't add an "error:" line.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
