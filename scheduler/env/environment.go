// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"os"
	"strings"
)

// Lookup reads a single environment variable. It matches the signature of
// os.Getenv so tests can substitute a fixed environment.
type Lookup func(key string) string

// InstanceID returns the configured instance id, or "" when unset.
// The value is not validated; EC2 rejects malformed ids.
func (l Lookup) InstanceID() string {
	if l == nil {
		return os.Getenv(InstanceIDKey)
	}
	return l(InstanceIDKey)
}

// GetenvWithDefault returns the value of key, or defaultValue when it is empty.
func GetenvWithDefault(key string, defaultValue string) string {
	envValue := os.Getenv(key)

	if envValue == "" {
		return defaultValue
	}

	return envValue
}

// FromMap builds a Lookup over a fixed set of KEY=VALUE pairs.
func FromMap(m map[string]string) Lookup {
	return func(key string) string {
		return m[key]
	}
}

// FromPairs builds a Lookup from KEY=VALUE strings, as found in os.Environ.
func FromPairs(pairs []string) (Lookup, error) {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, err := SplitEnvironmentVariable(pair)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return FromMap(m), nil
}

// SplitEnvironmentVariable splits an environment variable on the first '='.
func SplitEnvironmentVariable(envKeyVal string) (string, string, error) {
	splitKeyVal := strings.SplitN(envKeyVal, "=", 2)
	if len(splitKeyVal) < 2 {
		return "", "", fmt.Errorf("could not split env var by '=' delimiter: %s", envKeyVal)
	}
	return splitKeyVal[0], splitKeyVal[1], nil
}
