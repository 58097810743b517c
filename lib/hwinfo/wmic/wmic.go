// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package wmic queries the Windows Management Instrumentation command
// line (wmic.exe) for the video controller inventory, and checks for
// and installs WMIC itself, which recent Windows releases ship as an
// optional capability.
//
// All process execution goes through a [Runner], so the parsing and
// column handling can be exercised on any platform.
package wmic

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

// Runner executes a program and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec. Standard error is captured
// and included in error messages.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr
	if err := command.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w", name, err)
		}
		return stdout.Bytes(), fmt.Errorf("%s: %w: %s", name, err, message)
	}
	return stdout.Bytes(), nil
}

// VideoControllerArgs is the wmic argument list that produces the video
// controller inventory as CSV.
var VideoControllerArgs = []string{
	"path", "win32_VideoController",
	"get", "Name,DriverVersion,CurrentHorizontalResolution,CurrentVerticalResolution,Status,AdapterRAM",
	"/format:csv",
}

// Source implements hwinfo.TableSource by running wmic.
type Source struct {
	Runner Runner
}

// NewSource creates a Source that runs the real wmic.exe.
func NewSource() *Source {
	return &Source{Runner: ExecRunner{}}
}

// Query runs the video controller query and parses its CSV output. A
// failed or silent command yields hwinfo.ErrEmptyOutput.
func (s *Source) Query(ctx context.Context) (*hwinfo.Table, error) {
	output, err := s.Runner.Run(ctx, "wmic", VideoControllerArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", hwinfo.ErrEmptyOutput, err)
	}
	text, err := Decode(output)
	if err != nil {
		return nil, err
	}
	return hwinfo.ParseCSVTable(text)
}

// Decode converts wmic output to UTF-8. When stdout is redirected,
// wmic may write UTF-16LE with a byte order mark; anything else is
// passed through unchanged.
func Decode(output []byte) ([]byte, error) {
	if !bytes.HasPrefix(output, []byte{0xFF, 0xFE}) && !bytes.HasPrefix(output, []byte{0xFE, 0xFF}) {
		return output, nil
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hwinfo.ErrUndecodableOutput, err)
	}
	return decoded, nil
}
