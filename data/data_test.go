// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package data

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntries(t *testing.T) {
	entries := Entries()
	require.Greater(t, len(entries), 200)

	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		require.Len(t, e.Alpha2, 2)
		for _, r := range e.Alpha2 {
			require.True(t, 'A' <= r && r <= 'Z', "code %q is not upper case ascii", e.Alpha2)
		}
		require.NotEmpty(t, e.Name)

		prev, ok := seen[e.Alpha2]
		require.False(t, ok, "code %s appears twice: %q and %q", e.Alpha2, prev, e.Name)
		seen[e.Alpha2] = e.Name
	}

	require.Equal(t, "Australia", seen["AU"])
	require.Equal(t, "New Zealand", seen["NZ"])
}
