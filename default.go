// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package countries

import (
	"sync"

	"github.com/z5labs/countries/config"
)

var (
	defaultOnce       sync.Once
	defaultCollection *Collection
)

// Default returns the process-wide Collection. It is constructed on
// first use with the built-in table and settings read from the
// COUNTRIES_ONLY and COUNTRIES_OVERRIDE environment variables, both
// JSON objects:
//
//	COUNTRIES_ONLY='{"AU": "Desert"}'
//	COUNTRIES_OVERRIDE='{"NZ": "Middle Earth", "AU": null}'
//
// Changes to the environment are only observed after calling
// Invalidate on the returned Collection.
func Default() *Collection {
	defaultOnce.Do(func() {
		defaultCollection = New(
			Settings(config.FromSources(config.FromEnv())),
		)
	})
	return defaultCollection
}
