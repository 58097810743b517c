// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds the binary entrypoint error handler used
// before the structured logger exists.
package process
