// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package locale

import (
	"context"

	"golang.org/x/text/language"
)

type key struct{}

var contextKey = &key{}

// NewContext returns a new context.Context carrying the given locale.
func NewContext(parent context.Context, tag language.Tag) context.Context {
	return context.WithValue(parent, contextKey, tag)
}

// FromContext tries to extract a locale from the given context.Context.
func FromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(contextKey).(language.Tag)
	return tag, ok
}
