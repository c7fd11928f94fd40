package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedSet(t *testing.T) {
	t.Run("Add keeps first-seen order and drops duplicates", func(t *testing.T) {
		set := NewOrderedSet[string]()

		require.True(t, set.Add("b"))
		require.True(t, set.Add("a"))
		require.False(t, set.Add("b"))
		require.True(t, set.Add("c"))

		require.Equal(t, []string{"b", "a", "c"}, set.Items())
		require.Equal(t, 3, set.Len())
	})

	t.Run("Contains", func(t *testing.T) {
		set := NewOrderedSet[string]()
		set.Add("x")

		require.True(t, set.Contains("x"))
		require.False(t, set.Contains("y"))
	})

	t.Run("Items returns a copy", func(t *testing.T) {
		set := NewOrderedSet[string]()
		set.Add("x")

		items := set.Items()
		items[0] = "mutated"

		require.Equal(t, []string{"x"}, set.Items())
	})

	t.Run("Drain empties the set", func(t *testing.T) {
		set := NewOrderedSet[string]()
		set.Add("a")
		set.Add("b")

		drained := set.Drain()
		require.Equal(t, []string{"a", "b"}, drained)
		require.Equal(t, 0, set.Len())
		require.False(t, set.Contains("a"))

		// Items drained earlier can be added again.
		require.True(t, set.Add("a"))
		require.Equal(t, []string{"a", "b"}, drained)
	})

	t.Run("Drain on empty set returns empty slice", func(t *testing.T) {
		set := NewOrderedSet[string]()

		drained := set.Drain()
		require.NotNil(t, drained)
		require.Empty(t, drained)
	})
}
