// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unifetch/unifetch/lib/codec"
)

// Format selects how a command writes its result.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat parses a format name. Matching is case-insensitive and ""
// means text.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(name))); format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return format, nil
	default:
		return FormatText, fmt.Errorf("unknown format %q (want text, json, yaml, or cbor)", name)
	}
}

func (f Format) MarshalText() ([]byte, error) {
	if f == "" {
		return []byte(FormatText), nil
	}
	return []byte(f), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// WriteFormatted encodes value to w in a machine-readable format. Nil
// slices are written as empty lists. Text output is the caller's job.
func WriteFormatted(w io.Writer, format Format, value any) error {
	value = normalizeNilSlice(value)
	switch format {
	case FormatJSON:
		return writeJSON(w, value)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return encoder.Close()
	case FormatCBOR:
		data, err := codec.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("format %q is not a machine-readable format", format)
	}
}

// JSONOutput is an embeddable params struct adding --json.
type JSONOutput struct {
	OutputJSON bool `json:"-" flag:"json" desc:"output as JSON"`
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so encoders produce [] instead of null.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
