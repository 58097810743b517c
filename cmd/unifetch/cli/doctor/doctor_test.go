// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"
)

func withElevation(t *testing.T, elevated bool) {
	t.Helper()
	saved := isElevated
	isElevated = func() bool { return elevated }
	t.Cleanup(func() { isElevated = saved })
}

func noopFix(context.Context) error { return nil }

func TestConstructors(t *testing.T) {
	tests := []struct {
		result       Result
		wantStatus   Status
		wantFix      bool
		wantElevated bool
	}{
		{Pass("wmic", "installed"), StatusPass, false, false},
		{Fail("wmic", "missing"), StatusFail, false, false},
		{FailWithFix("wmic", "missing", "install it", noopFix), StatusFail, true, false},
		{FailElevated("wmic", "missing", "install it", noopFix), StatusFail, true, true},
		{Warn("nvml", "not loaded"), StatusWarn, false, false},
		{Skip("wmic", "not windows"), StatusSkip, false, false},
	}
	for _, test := range tests {
		if test.result.Status != test.wantStatus {
			t.Errorf("%s/%s: status = %q, want %q", test.result.Name, test.result.Message, test.result.Status, test.wantStatus)
		}
		if test.result.HasFix() != test.wantFix {
			t.Errorf("%s/%s: HasFix = %v, want %v", test.result.Name, test.result.Message, test.result.HasFix(), test.wantFix)
		}
		if test.result.Elevated != test.wantElevated {
			t.Errorf("%s/%s: Elevated = %v, want %v", test.result.Name, test.result.Message, test.result.Elevated, test.wantElevated)
		}
	}
}

func TestExecuteFixesDryRun(t *testing.T) {
	called := false
	results := []Result{FailWithFix("check", "broken", "fix it", func(context.Context) error {
		called = true
		return nil
	})}

	outcome := ExecuteFixes(context.Background(), results, true, nil)
	if called {
		t.Error("dry run called the fix")
	}
	if outcome.FixedCount != 0 || results[0].Status != StatusFail {
		t.Errorf("dry run changed state: outcome=%+v status=%q", outcome, results[0].Status)
	}
}

func TestExecuteFixes(t *testing.T) {
	withElevation(t, false)
	results := []Result{
		Pass("ok", "fine"),
		FailWithFix("fixable", "broken", "fix it", noopFix),
		Fail("unfixable", "no fix available"),
		FailWithFix("exploding", "broken", "fix it", func(context.Context) error {
			return errors.New("fix exploded")
		}),
		FailWithFix("denied", "broken", "fix it", func(context.Context) error {
			return fmt.Errorf("running DISM: %w", syscall.EACCES)
		}),
	}

	outcome := ExecuteFixes(context.Background(), results, false, nil)

	if outcome.FixedCount != 1 {
		t.Errorf("FixedCount = %d, want 1", outcome.FixedCount)
	}
	if !outcome.PermissionDenied {
		t.Error("PermissionDenied = false, want true for EACCES")
	}
	wantStatus := []Status{StatusPass, StatusFixed, StatusFail, StatusFail, StatusFail}
	for i, want := range wantStatus {
		if results[i].Status != want {
			t.Errorf("results[%d] (%s) status = %q, want %q", i, results[i].Name, results[i].Status, want)
		}
	}
	if results[3].Message != "broken (fix failed: fix exploded)" {
		t.Errorf("failed fix message = %q", results[3].Message)
	}
	if results[4].Message != "broken (insufficient permissions)" {
		t.Errorf("denied fix message = %q", results[4].Message)
	}
}

func TestExecuteFixesElevation(t *testing.T) {
	for _, elevated := range []bool{false, true} {
		withElevation(t, elevated)
		called := false
		results := []Result{FailElevated("wmic", "missing", "install WMIC", func(context.Context) error {
			called = true
			return nil
		})}

		outcome := ExecuteFixes(context.Background(), results, false, nil)

		if called != elevated {
			t.Errorf("elevated=%v: fix called = %v", elevated, called)
		}
		wantSkipped := 1
		if elevated {
			wantSkipped = 0
		}
		if outcome.ElevatedSkipped != wantSkipped {
			t.Errorf("elevated=%v: ElevatedSkipped = %d, want %d", elevated, outcome.ElevatedSkipped, wantSkipped)
		}
	}
}

func TestBuildJSON(t *testing.T) {
	output := BuildJSON([]Result{Pass("a", "ok"), Fail("b", "broken")}, true, Outcome{ElevatedSkipped: 1})
	if output.OK || !output.DryRun || output.ElevatedSkipped != 1 || len(output.Checks) != 2 {
		t.Errorf("BuildJSON = %+v", output)
	}
	if !BuildJSON([]Result{Pass("a", "ok"), Warn("c", "meh")}, false, Outcome{}).OK {
		t.Error("warnings should not fail the checklist")
	}
}

func TestMarkRepaired(t *testing.T) {
	results := []Result{Pass("repaired", "ok"), Pass("always", "ok"), Fail("broken", "bad")}
	MarkRepaired(results, map[string]bool{"repaired": true, "broken": true})
	want := []Status{StatusFixed, StatusPass, StatusFail}
	for i := range want {
		if results[i].Status != want[i] {
			t.Errorf("results[%d] status = %q, want %q", i, results[i].Status, want[i])
		}
	}
}

func TestPrintChecklist(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		fixMode  bool
		dryRun   bool
		outcome  Outcome
		wantFail bool
		want     []string
	}{
		{
			name:    "all pass",
			results: []Result{Pass("wmic", "installed")},
			want:    []string{"[PASS ]  wmic", "All checks passed."},
		},
		{
			name:     "fixable without --fix",
			results:  []Result{FailElevated("wmic", "not installed", "install WMIC", noopFix)},
			wantFail: true,
			want:     []string{"[FAIL ]", "Run with --fix to repair 1 issue(s)."},
		},
		{
			name:     "dry run",
			results:  []Result{FailElevated("wmic", "not installed", "install WMIC", noopFix)},
			fixMode:  true,
			dryRun:   true,
			wantFail: true,
			want:     []string{"would fix: install WMIC (requires administrator)", "1 issue(s) would be repaired."},
		},
		{
			name:     "elevated skipped",
			results:  []Result{FailElevated("wmic", "not installed", "install WMIC", noopFix)},
			fixMode:  true,
			outcome:  Outcome{ElevatedSkipped: 1},
			wantFail: true,
			want:     []string{"Some checks failed.", "1 fix(es) require administrator privileges:", "  - install WMIC", "unifetch doctor --fix"},
		},
		{
			name:    "repaired",
			results: []Result{{Name: "wmic", Status: StatusFixed, Message: "installed"}},
			fixMode: true,
			want:    []string{"[FIXED]", "1 issue(s) repaired."},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			failed := PrintChecklist(&buffer, test.results, test.fixMode, test.dryRun, test.outcome)
			if failed != test.wantFail {
				t.Errorf("PrintChecklist returned %v, want %v", failed, test.wantFail)
			}
			for _, want := range test.want {
				if !strings.Contains(buffer.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buffer.String())
				}
			}
		})
	}
}
