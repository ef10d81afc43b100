// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package countries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("returns the same instance", func(t *testing.T) {
		require.Same(t, Default(), Default())
	})

	t.Run("carries the built-in table", func(t *testing.T) {
		Default().Invalidate()

		require.Greater(t, Default().Len(), 200)
		require.True(t, Default().Contains("NZ"))
		require.Equal(t, "New Zealand", Default().Name(context.Background(), "NZ"))
	})

	t.Run("reads settings from the environment", func(t *testing.T) {
		t.Setenv("COUNTRIES_OVERRIDE", `{"NZ": "Middle Earth", "AU": null}`)
		t.Cleanup(Default().Invalidate)
		Default().Invalidate()

		require.Equal(t, "Middle Earth", Default().Name(context.Background(), "NZ"))
		require.False(t, Default().Contains("AU"))
	})
}
