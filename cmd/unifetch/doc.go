// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Unifetch prints a summary of the local machine's hardware and
// operating system.
//
//	unifetch [report] [-s minimal|default|detailed] [--format text|json|yaml|cbor]
//	unifetch doctor [--fix] [--dry-run] [--json]
//	unifetch version
package main
