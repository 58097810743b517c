// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the check-and-fix workflow behind
// "unifetch doctor" and the report command's helper bootstrap.
//
// Each check produces a [Result]. Fixable failures carry a fix closure
// run by [ExecuteFixes]; fixes that need administrator rights are
// marked elevated and skipped when the process lacks them.
// [PrintChecklist] renders results for humans and [BuildJSON] for
// machines. Which checks exist, and how to fix them, is decided by the
// caller.
package doctor
