// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"fmt"
	"strings"
)

// Tier selects how much detail a record renders. Tiers are ordered:
// every tier renders everything the tiers below it render.
type Tier int

const (
	// TierMinimal renders the category label and one identifying value.
	TierMinimal Tier = iota

	// TierDefault adds the most commonly useful secondary metrics.
	TierDefault

	// TierDetailed adds every remaining attribute.
	TierDetailed
)

// Tiers lists all tiers in ascending order of detail.
var Tiers = []Tier{TierMinimal, TierDefault, TierDetailed}

// String returns the lowercase tier name used on the command line.
func (t Tier) String() string {
	switch t {
	case TierMinimal:
		return "minimal"
	case TierDefault:
		return "default"
	case TierDetailed:
		return "detailed"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier parses a tier name. Matching is case-insensitive.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimal":
		return TierMinimal, nil
	case "default", "":
		return TierDefault, nil
	case "detailed":
		return TierDetailed, nil
	default:
		return TierDefault, fmt.Errorf("unknown style %q (want minimal, default, or detailed)", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
