// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package locale resolves country names into display strings for a
// target locale and defines how those strings are ordered.
//
// The target locale travels on the context.Context via NewContext.
// Callers which do not set one fall back to the locale the Localizer
// was constructed with, typically System.
package locale

import (
	"context"
	"sync"

	golocale "github.com/Xuanwo/go-locale"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Localizer renders Names into display strings and orders them for
// the locale carried by the context.
type Localizer interface {
	Localize(ctx context.Context, n Name) string
	Compare(ctx context.Context, a, b string) int
}

// Collator is a Localizer which orders display strings using the
// Unicode collation rules of the target locale.
type Collator struct {
	fallback language.Tag

	mu        sync.Mutex
	collators map[language.Tag]*collate.Collator
}

// NewCollator returns a Collator which falls back to the given locale
// whenever the context does not carry one.
func NewCollator(fallback language.Tag) *Collator {
	return &Collator{
		fallback:  fallback,
		collators: make(map[language.Tag]*collate.Collator),
	}
}

// Localize implements the Localizer interface.
func (c *Collator) Localize(ctx context.Context, n Name) string {
	return n.Resolve(c.tag(ctx))
}

// Compare implements the Localizer interface.
func (c *Collator) Compare(ctx context.Context, a, b string) int {
	return c.collator(c.tag(ctx)).CompareString(a, b)
}

func (c *Collator) tag(ctx context.Context) language.Tag {
	tag, ok := FromContext(ctx)
	if !ok {
		return c.fallback
	}
	return tag
}

func (c *Collator) collator(tag language.Tag) *collate.Collator {
	c.mu.Lock()
	defer c.mu.Unlock()

	col, ok := c.collators[tag]
	if !ok {
		col = collate.New(tag)
		c.collators[tag] = col
	}
	return col
}

var (
	systemOnce sync.Once
	systemTag  language.Tag
)

// System returns the locale detected from the host environment. The
// detection runs once per process; failures fall back to language.Und.
func System() language.Tag {
	systemOnce.Do(func() {
		systemTag = language.Und

		tag, err := golocale.Detect()
		if err != nil {
			return
		}
		systemTag = tag
	})
	return systemTag
}
