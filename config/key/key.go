// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key defines how config keys are represented.
package key

import "strings"

// Keyer represents anything which can be represented as a config key.
type Keyer interface {
	Key() string
}

// Name is a single config key.
type Name string

// Key implements the Keyer interface.
func (n Name) Key() string {
	return string(n)
}

// Chain is an ordered sequence of Keyers which together
// represent a nested config key.
type Chain []Keyer

// Key implements the Keyer interface.
func (c Chain) Key() string {
	parts := make([]string, 0, len(c))
	for _, k := range c {
		parts = append(parts, k.Key())
	}
	return strings.Join(parts, ".")
}
