// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"testing"
)

func TestReport(t *testing.T) {
	var buffer bytes.Buffer
	Report(&buffer, errors.New("unknown command \"repot\""))
	if got, want := buffer.String(), "error: unknown command \"repot\"\n"; got != want {
		t.Errorf("Report wrote %q, want %q", got, want)
	}
}
