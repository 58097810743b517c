// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"fmt"
	"strings"
)

// Field is one "- Key: Value" sub-line of a rendered record.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Block is the structured rendering of a record: a label line followed
// by zero or more fields.
type Block struct {
	Label  string  `json:"label" yaml:"label"`
	Value  string  `json:"value" yaml:"value"`
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// String formats the block as "<Label>: <Value>" followed by one
// "\n\t- <Key>: <Value>" line per field.
func (b Block) String() string {
	var builder strings.Builder
	builder.WriteString(b.Label)
	builder.WriteString(": ")
	builder.WriteString(b.Value)
	for _, field := range b.Fields {
		builder.WriteString("\n\t- ")
		builder.WriteString(field.Key)
		builder.WriteString(": ")
		builder.WriteString(field.Value)
	}
	return builder.String()
}

func (b *Block) add(key, value string) {
	b.Fields = append(b.Fields, Field{Key: key, Value: value})
}

func (b *Block) addf(key, format string, args ...any) {
	b.add(key, fmt.Sprintf(format, args...))
}

const bytesPerGigabyte = 1024 * 1024 * 1024

// Gigabytes converts a byte count to binary gigabytes (1024³ bytes).
func Gigabytes(bytes uint64) float64 {
	return float64(bytes) / bytesPerGigabyte
}
