// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestName_Resolve(t *testing.T) {
	t.Run("concrete names ignore the locale", func(t *testing.T) {
		n := String("New Zealand")
		require.Equal(t, "New Zealand", n.Resolve(language.Und))
		require.Equal(t, "New Zealand", n.Resolve(language.German))
	})

	t.Run("deferred names resolve for the locale", func(t *testing.T) {
		n := Deferred(func(tag language.Tag) string {
			if tag == language.German {
				return "Neuseeland"
			}
			return "New Zealand"
		})
		require.Equal(t, "New Zealand", n.Resolve(language.Und))
		require.Equal(t, "Neuseeland", n.Resolve(language.German))
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns the carried locale", func(t *testing.T) {
		ctx := NewContext(context.Background(), language.German)

		tag, ok := FromContext(ctx)
		require.True(t, ok)
		require.Equal(t, language.German, tag)
	})

	t.Run("reports when no locale is carried", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		require.False(t, ok)
	})
}

func TestCollator_Localize(t *testing.T) {
	name := Deferred(func(tag language.Tag) string {
		if tag == language.German {
			return "Neuseeland"
		}
		return "New Zealand"
	})

	t.Run("uses the context locale", func(t *testing.T) {
		c := NewCollator(language.Und)
		ctx := NewContext(context.Background(), language.German)
		require.Equal(t, "Neuseeland", c.Localize(ctx, name))
	})

	t.Run("falls back when the context carries no locale", func(t *testing.T) {
		c := NewCollator(language.German)
		require.Equal(t, "Neuseeland", c.Localize(context.Background(), name))
	})
}

func TestCollator_Compare(t *testing.T) {
	c := NewCollator(language.Und)
	ctx := context.Background()

	t.Run("orders case insensitively at the primary level", func(t *testing.T) {
		require.Negative(t, c.Compare(ctx, "australia", "Brazil"))
	})

	t.Run("orders accented names next to their base letter", func(t *testing.T) {
		// Byte order would place Éire after any ASCII name.
		require.Negative(t, c.Compare(ctx, "Éire", "France"))
		require.Positive(t, c.Compare(ctx, "Éire", "Denmark"))
	})

	t.Run("reports equal strings", func(t *testing.T) {
		require.Zero(t, c.Compare(ctx, "Australia", "Australia"))
	})
}

func TestSystem(t *testing.T) {
	// Detection result depends on the host; it only needs to be stable.
	require.Equal(t, System(), System())
}
