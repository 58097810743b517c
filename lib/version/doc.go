// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the unifetch build version.
//
// Values are injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/unifetch/unifetch/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version
