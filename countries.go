// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package countries

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/z5labs/countries/config"
	"github.com/z5labs/countries/data"
	"github.com/z5labs/countries/locale"
)

// RawEntry is a merged table record before localization. Its name may
// still be deferred.
type RawEntry struct {
	Code string
	Name locale.Name
}

// Entry is a localized table record.
type Entry struct {
	Code string
	Name string
}

type options struct {
	logHandler slog.Handler
	base       func() []RawEntry
	settings   config.Provider
	localizer  locale.Localizer
}

// Option configures a Collection.
type Option func(*options)

// LogHandler configures the slog.Handler used for debug logging.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// Base configures the base dataset loader. The loader is only invoked
// on the first cache rebuild. Defaults to the built-in ISO 3166-1
// table from the data package.
func Base(load func() []RawEntry) Option {
	return func(o *options) {
		o.base = load
	}
}

// Settings configures the settings Provider consulted on every cache
// rebuild. Defaults to empty settings.
func Settings(p config.Provider) Option {
	return func(o *options) {
		o.settings = p
	}
}

// Localizer configures how names are rendered and ordered. Defaults
// to a locale.Collator falling back to the system locale.
func Localizer(l locale.Localizer) Option {
	return func(o *options) {
		o.localizer = l
	}
}

// Collection exposes the effective country table: the base dataset
// merged with the configured replacement and override layers.
//
// The merged table is computed at most once per cache generation.
// Rebuilding is pure and idempotent so the mutex around cache
// population is an optimization rather than a correctness need.
type Collection struct {
	log       *slog.Logger
	base      func() []RawEntry
	settings  config.Provider
	localizer locale.Localizer

	mu     sync.Mutex
	cached *snapshot
}

type snapshot struct {
	entries []RawEntry
	names   map[string]locale.Name
}

// New returns a fully initialized Collection.
func New(opts ...Option) *Collection {
	o := &options{
		logHandler: noopLogHandler{},
		base:       builtinBase,
		settings:   config.Static(config.Settings{}),
		localizer:  locale.NewCollator(locale.System()),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Collection{
		log:       slog.New(o.logHandler),
		base:      o.base,
		settings:  o.settings,
		localizer: o.localizer,
	}
}

func builtinBase() []RawEntry {
	src := data.Entries()
	entries := make([]RawEntry, len(src))
	for i, e := range src {
		entries[i] = RawEntry{
			Code: e.Alpha2,
			Name: locale.String(e.Name),
		}
	}
	return entries
}

// RawEntries returns the merged table in raw storage order: base
// dataset order with override substitutions in place, followed by
// override additions ordered by code. Repeated calls return the
// identical cached slice until Invalidate is called. Callers must
// not modify the returned slice.
func (c *Collection) RawEntries() []RawEntry {
	return c.snapshot().entries
}

// Invalidate drops the cached table so the next read recomputes it
// from the base dataset and freshly read settings. Safe to call when
// nothing is cached yet.
func (c *Collection) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached == nil {
		return
	}
	c.cached = nil
	c.log.Debug("invalidated country table cache")
}

func (c *Collection) snapshot() *snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached
	}

	settings, err := c.settings.Settings()
	if err != nil {
		c.log.Error("failed to read settings", slog.Any("error", err))
		settings = config.Settings{}
	}

	entries := merge(c.base(), settings)
	names := make(map[string]locale.Name, len(entries))
	for _, e := range entries {
		names[e.Code] = e.Name
	}

	c.cached = &snapshot{
		entries: entries,
		names:   names,
	}
	c.log.Debug("rebuilt country table", slog.Int("entries", len(entries)))
	return c.cached
}

// merge resolves the configured layers into the effective table. A
// non-empty Only wins outright; otherwise overrides are applied over
// the base dataset with nil values removing entries. Go maps carry no
// order so both Only entries and override additions are ordered by code.
func merge(base []RawEntry, settings config.Settings) []RawEntry {
	if len(settings.Only) > 0 {
		entries := make([]RawEntry, 0, len(settings.Only))
		for _, code := range slices.Sorted(maps.Keys(settings.Only)) {
			entries = append(entries, RawEntry{
				Code: code,
				Name: locale.String(settings.Only[code]),
			})
		}
		return entries
	}

	overrides := settings.Override
	entries := make([]RawEntry, 0, len(base)+len(overrides))
	seen := make(map[string]struct{}, len(base))
	for _, e := range base {
		seen[e.Code] = struct{}{}

		name := e.Name
		if override, ok := overrides[e.Code]; ok {
			if override == nil {
				continue
			}
			name = locale.String(*override)
		}
		entries = append(entries, RawEntry{Code: e.Code, Name: name})
	}
	for _, code := range slices.Sorted(maps.Keys(overrides)) {
		if _, ok := seen[code]; ok {
			continue
		}
		override := overrides[code]
		if override == nil {
			continue
		}
		entries = append(entries, RawEntry{Code: code, Name: locale.String(*override)})
	}
	return entries
}

// All returns an iterator over (code, name) pairs ordered ascending by
// name, localized for the locale carried by ctx. Ties keep raw order.
// The order is recomputed on every call since the locale may differ
// between calls.
func (c *Collection) All(ctx context.Context) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range c.sorted(ctx) {
			if !yield(e.Code, e.Name) {
				return
			}
		}
	}
}

func (c *Collection) sorted(ctx context.Context) []Entry {
	raw := c.snapshot().entries

	entries := make([]Entry, len(raw))
	for i, e := range raw {
		entries[i] = Entry{
			Code: e.Code,
			Name: c.localizer.Localize(ctx, e.Name),
		}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return c.localizer.Compare(ctx, a.Name, b.Name)
	})
	return entries
}

// Name returns the localized name for code, or "" if the code is not
// part of the effective table. Unknown codes are never an error.
func (c *Collection) Name(ctx context.Context, code string) string {
	name, ok := c.snapshot().names[code]
	if !ok {
		return ""
	}
	return c.localizer.Localize(ctx, name)
}

// Contains reports whether code is part of the effective table.
func (c *Collection) Contains(code string) bool {
	for _, e := range c.snapshot().entries {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Len returns the number of entries in the effective table.
func (c *Collection) Len() int {
	return len(c.snapshot().entries)
}

// IndexOutOfRangeError occurs when At is given an index outside the
// table bounds.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range with length %d", e.Index, e.Len)
}

// At returns the i-th entry of the localized, name-sorted order that
// All produces.
func (c *Collection) At(ctx context.Context, i int) (Entry, error) {
	entries := c.sorted(ctx)
	if i < 0 || i >= len(entries) {
		return Entry{}, IndexOutOfRangeError{Index: i, Len: len(entries)}
	}
	return entries[i], nil
}

// Slice returns the [start, stop) sub-sequence of the localized,
// name-sorted order, taking every step-th entry. A negative step walks
// downward from start to stop, exclusive. Bounds are clamped so Slice
// never fails; out of range values yield an empty result, as does a
// zero step.
func (c *Collection) Slice(ctx context.Context, start, stop, step int) []Entry {
	if step == 0 {
		return nil
	}

	entries := c.sorted(ctx)
	n := len(entries)

	var out []Entry
	if step > 0 {
		if start < 0 {
			start = 0
		}
		if stop > n {
			stop = n
		}
		for i := start; i < stop; i += step {
			out = append(out, entries[i])
		}
		return out
	}

	if start >= n {
		start = n - 1
	}
	if stop < -1 {
		stop = -1
	}
	for i := start; i > stop; i += step {
		out = append(out, entries[i])
	}
	return out
}

type noopLogHandler struct{}

func (noopLogHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopLogHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopLogHandler) WithGroup(string) slog.Handler { return h }
