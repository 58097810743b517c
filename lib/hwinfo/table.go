// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table is a tabular device inventory: a header row naming the columns
// and data rows of the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableSource produces a device inventory table. Implementations run a
// shell query (Windows) or walk sysfs (Linux).
type TableSource interface {
	Query(ctx context.Context) (*Table, error)
}

// Columns maps each header name to its column index. When a name
// repeats, the first occurrence wins.
func (t *Table) Columns() map[string]int {
	columns := make(map[string]int, len(t.Header))
	for index, name := range t.Header {
		if _, exists := columns[name]; !exists {
			columns[name] = index
		}
	}
	return columns
}

// Lookup returns the value of the named column in the given row. The
// second return is false if the row or column does not exist.
func (t *Table) Lookup(row int, column string) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	index, ok := t.Columns()[column]
	if !ok || index >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][index], true
}

// Validate reports a structural problem with the table: a missing
// header or a row whose width differs from the header's.
func (t *Table) Validate() error {
	if t == nil || len(t.Header) == 0 {
		return fmt.Errorf("%w: missing header row", ErrMalformedTable)
	}
	for index, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrMalformedTable, index+1, len(row), len(t.Header))
		}
	}
	return nil
}

// ParseCSVTable parses comma-separated output whose first non-blank
// line is the header. Carriage returns are dropped, so "\r\r\n" line
// endings parse the same as "\n". Leading and trailing whitespace in
// each field is trimmed.
func ParseCSVTable(data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyOutput
	}
	if !utf8.Valid(data) {
		return nil, ErrUndecodableOutput
	}

	reader := csv.NewReader(bytes.NewReader(bytes.ReplaceAll(data, []byte("\r"), nil)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	table := &Table{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
		}
		for index := range record {
			record[index] = strings.TrimSpace(record[index])
		}
		if table.Header == nil {
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
