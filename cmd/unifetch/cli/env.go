// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"slices"
	"strconv"

	"github.com/spf13/pflag"
)

// lookupEnv is replaced in tests.
var lookupEnv = os.LookupEnv

// applyEnv sets each mapped flag from its environment variable. Flags
// set this way are still overridden by the command line because Parse
// runs afterwards. Boolean flags treat any non-empty value other than
// an explicit false as true, so NO_COLOR=yes works as documented by
// the NO_COLOR convention.
func applyEnv(flagSet *pflag.FlagSet, env map[string]string) error {
	for _, flagName := range sortedKeys(env) {
		variable := env[flagName]
		value, ok := lookupEnv(variable)
		if !ok || value == "" {
			continue
		}
		flag := flagSet.Lookup(flagName)
		if flag == nil {
			continue
		}
		if flag.Value.Type() == "bool" {
			if parsed, err := strconv.ParseBool(value); err == nil {
				value = strconv.FormatBool(parsed)
			} else {
				value = "true"
			}
		}
		if err := flagSet.Set(flagName, value); err != nil {
			return Validation("invalid %s=%q: %v", variable, value, err)
		}
		// The value came from the environment, not the user.
		flag.Changed = false
	}
	return nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
