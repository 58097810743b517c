// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "bac", 2},
		{"kitten", "sitting", 3},
		{"report", "repot", 1},
		{"doctor", "docotr", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if got := levenshtein(test.b, test.a); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.b, test.a, got, test.want)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "report"}, {Name: "doctor"}, {Name: "version"}}
	tests := []struct {
		input string
		want  string
	}{
		{"repotr", "report"},
		{"docter", "doctor"},
		{"verison", "version"},
		{"xyzzyplugh", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
		flagSet.StringP("style", "s", "default", "")
		flagSet.String("format", "text", "")
		flagSet.Bool("no-color", false, "")
		return flagSet
	}
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--stlye", "minimal"}, "--style"},
		{[]string{"--style", "minimal", "--formt=json"}, "--format"},
		{[]string{"--nocolor"}, "--no-color"},
		{[]string{"--completely-unrelated"}, ""},
		{[]string{"-s", "minimal"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, newFlags()); got != test.want {
			t.Errorf("suggestFlag(%q) = %q, want %q", test.args, got, test.want)
		}
	}
}
