// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package countries provides a queryable, overridable reference table
// of ISO 3166-1 countries, meant to back choices lists in form fields.
//
// The effective table is the built-in dataset merged with two
// independent configuration layers:
//
//   - countries_only: a full replacement table, highest precedence
//   - countries_override: partial renames, removals (null values)
//     and additions layered over the built-in dataset
//
// The merge runs lazily on first access and is cached. Configuration
// is re-read on every rebuild, so after changing it call
// [Collection.Invalidate] to make the change observable.
//
// # Iteration order
//
// Iteration is ordered ascending by display name, localized for the
// locale carried by the context:
//
//	ctx := locale.NewContext(context.Background(), language.German)
//	for code, name := range countries.Default().All(ctx) {
//	    fmt.Println(code, name)
//	}
//
// The order is recomputed on every call since the locale may differ
// between calls within the same process.
//
// # Basic Usage
//
// Look up names and membership through the process-wide instance:
//
//	countries.Default().Name(ctx, "NZ") // "New Zealand"
//	countries.Default().Contains("NZ")  // true
//
// Or construct a Collection with explicit collaborators:
//
//	c := countries.New(
//	    countries.Settings(config.Static(config.Settings{
//	        Override: map[string]*string{"NZ": &middleEarth},
//	    })),
//	)
package countries
