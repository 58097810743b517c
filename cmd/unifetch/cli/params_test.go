// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Style    hwinfo.Tier   `flag:"style,s" default:"default"`
		Format   Format        `flag:"format" default:"text"`
		Verbose  bool          `flag:"verbose,v"`
		Count    int           `flag:"count"`
		Interval time.Duration `flag:"interval" default:"200ms"`
		Only     []string      `flag:"only"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if p.Style != hwinfo.TierDefault || p.Format != FormatText || p.Interval != 200*time.Millisecond {
		t.Errorf("defaults = %v/%v/%v, want default/text/200ms", p.Style, p.Format, p.Interval)
	}

	err := flagSet.Parse([]string{
		"-s", "Detailed",
		"--format", "yaml",
		"-v",
		"--count", "3",
		"--interval", "1s",
		"--only", "cpu,gpu",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Style != hwinfo.TierDetailed {
		t.Errorf("Style = %v, want detailed", p.Style)
	}
	if p.Format != FormatYAML {
		t.Errorf("Format = %q, want yaml", p.Format)
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 3 {
		t.Errorf("Count = %d, want 3", p.Count)
	}
	if p.Interval != time.Second {
		t.Errorf("Interval = %v, want 1s", p.Interval)
	}
	if len(p.Only) != 2 || p.Only[0] != "cpu" || p.Only[1] != "gpu" {
		t.Errorf("Only = %v, want [cpu gpu]", p.Only)
	}
}

func TestBindFlags_TextValueRejectsUnknown(t *testing.T) {
	var p struct {
		Style hwinfo.Tier `flag:"style"`
	}
	flagSet := FlagsFromParams("test", &p)
	flagSet.SetOutput(new(strings.Builder))
	err := flagSet.Parse([]string{"--style", "verbose"})
	if err == nil || !strings.Contains(err.Error(), "unknown style") {
		t.Errorf("Parse error = %v, want unknown style", err)
	}
}

func TestBindFlags_EmbeddedStructs(t *testing.T) {
	var p struct {
		Verbosity
		JSONOutput
		Fix bool `flag:"fix"`
	}
	flagSet := FlagsFromParams("doctor", &p)
	if err := flagSet.Parse([]string{"--json", "--verbose", "--fix"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON || !p.Verbose || !p.Fix {
		t.Errorf("params = %+v, want all set", p)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Error("BindFlags(non-pointer) succeeded")
	}

	var unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	if err := BindFlags(&unsupported, flagSet); err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("BindFlags(float32) error = %v, want unsupported type", err)
	}

	var badDefault struct {
		Style hwinfo.Tier `flag:"style" default:"loud"`
	}
	if err := BindFlags(&badDefault, pflag.NewFlagSet("test", pflag.ContinueOnError)); err == nil {
		t.Error("BindFlags with an invalid text default succeeded")
	}
}

func TestFlagsFromParams_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic for a non-struct")
		}
	}()
	value := 3
	FlagsFromParams("test", &value)
}
