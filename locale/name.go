// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package locale

import "golang.org/x/text/language"

// Name is a country name whose display form may be deferred until
// the target locale is known.
type Name struct {
	value string
	fn    func(language.Tag) string
}

// String returns a Name with a fixed display form.
func String(s string) Name {
	return Name{value: s}
}

// Deferred returns a Name whose display form is computed from the
// target locale. fn must be pure.
func Deferred(fn func(language.Tag) string) Name {
	return Name{fn: fn}
}

// Resolve forces the Name into a concrete string for the given locale.
func (n Name) Resolve(tag language.Tag) string {
	if n.fn == nil {
		return n.value
	}
	return n.fn(tag)
}
