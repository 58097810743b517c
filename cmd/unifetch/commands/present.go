// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

// printer writes the text report: a bold yellow "Information:"
// heading, then one block per record with blue labels and yellow keys,
// then one "ERROR:" line per failed category on the error stream.
type printer struct {
	out    io.Writer
	errOut io.Writer

	heading lipgloss.Style
	label   lipgloss.Style
	key     lipgloss.Style
	failure lipgloss.Style
}

func newPrinter(out, errOut io.Writer, noColor bool) *printer {
	outRenderer := newRenderer(out, noColor)
	errRenderer := newRenderer(errOut, noColor)
	return &printer{
		out:     out,
		errOut:  errOut,
		heading: outRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		label:   outRenderer.NewStyle().Foreground(lipgloss.Color("4")),
		key:     outRenderer.NewStyle().Foreground(lipgloss.Color("3")),
		failure: errRenderer.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// newRenderer styles for w's terminal, or not at all when color is
// disabled or w is not a terminal.
func newRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	} else {
		renderer.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	}
	return renderer
}

func (p *printer) report(report *hwinfo.Report, tier hwinfo.Tier) {
	fmt.Fprintln(p.out, p.heading.Render("Information:"))
	for _, record := range report.Records {
		fmt.Fprintln(p.out, p.block(record.Block(tier)))
	}
	p.failures(report)
}

func (p *printer) failures(report *hwinfo.Report) {
	for _, failure := range report.Failures {
		fmt.Fprintf(p.errOut, "%s %s\n", p.failure.Render("ERROR:"), failure.Error())
	}
}

// block renders like hwinfo.Block.String with styled label and keys.
func (p *printer) block(block hwinfo.Block) string {
	text := p.label.Render(block.Label) + ": " + block.Value
	for _, field := range block.Fields {
		text += "\n\t- " + p.key.Render(field.Key) + ": " + field.Value
	}
	return text
}
