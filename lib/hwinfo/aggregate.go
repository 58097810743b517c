// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"log/slog"
	"time"

	"github.com/unifetch/unifetch/lib/clock"
)

// Aggregator runs one adapter per category against a single shared
// snapshot and collects the results into a Report.
type Aggregator struct {
	// Sampler is refreshed exactly once per Collect, before any
	// adapter runs. Nil yields an empty snapshot.
	Sampler Sampler

	// Adapters maps each category to the adapter that acquires it.
	Adapters map[Category]Adapter

	// Categories is the request order. Nil means DefaultCategories.
	Categories []Category

	// Clock timestamps the report. Nil means the real clock.
	Clock clock.Clock

	// Logger receives one Debug line per category outcome. Nil
	// discards.
	Logger *slog.Logger
}

// Report is the outcome of one aggregation pass. Records are ordered by
// requested category first and adapter order second.
type Report struct {
	CollectedAt time.Time
	Records     []Record
	Failures    []*SourceError
}

// Collect runs every requested category once. A failing category is
// recorded in Report.Failures and the pass continues; Collect itself
// never fails. Cancelling ctx fails whichever adapters observe it.
func (a *Aggregator) Collect(ctx context.Context) *Report {
	clk := a.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	categories := a.Categories
	if categories == nil {
		categories = DefaultCategories
	}

	snapshot := &Snapshot{}
	if a.Sampler != nil {
		snapshot = a.Sampler.Sample(ctx)
	}

	report := &Report{CollectedAt: clk.Now()}
	for _, category := range categories {
		adapter, ok := a.Adapters[category]
		if !ok || adapter == nil {
			report.fail(logger, category, ErrNoAdapter)
			continue
		}
		records, err := adapter.Acquire(ctx, snapshot)
		if err != nil {
			report.fail(logger, category, err)
			continue
		}
		logger.Debug("category acquired",
			"category", string(category),
			"records", len(records),
		)
		report.Records = append(report.Records, records...)
	}
	return report
}

func (r *Report) fail(logger *slog.Logger, category Category, err error) {
	sourceError := &SourceError{Category: category, Err: err}
	r.Failures = append(r.Failures, sourceError)
	logger.Debug("category failed",
		"category", string(category),
		"error", err,
	)
}

// Document is the machine-readable form of a Report.
type Document struct {
	CollectedAt time.Time       `json:"collected_at" yaml:"collected_at"`
	Style       Tier            `json:"style" yaml:"style"`
	Records     []DocumentEntry `json:"records" yaml:"records"`
	Failures    []DocumentError `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// DocumentEntry is one record together with its text rendering at the
// document's style.
type DocumentEntry struct {
	Category Category `json:"category" yaml:"category"`
	Text     string   `json:"text" yaml:"text"`
	Data     Record   `json:"data" yaml:"data"`
}

// DocumentError is one failed category.
type DocumentError struct {
	Category Category `json:"category" yaml:"category"`
	Error    string   `json:"error" yaml:"error"`
}

// Document converts the report to its machine-readable form.
func (r *Report) Document(tier Tier) Document {
	document := Document{
		CollectedAt: r.CollectedAt,
		Style:       tier,
		Records:     make([]DocumentEntry, 0, len(r.Records)),
	}
	for _, record := range r.Records {
		document.Records = append(document.Records, DocumentEntry{
			Category: record.Category(),
			Text:     record.Render(tier),
			Data:     record,
		})
	}
	for _, failure := range r.Failures {
		document.Failures = append(document.Failures, DocumentError{
			Category: failure.Category,
			Error:    failure.Err.Error(),
		})
	}
	return document
}
