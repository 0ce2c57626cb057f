package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "w"
	}
	return out
}

func TestTruncateWords(t *testing.T) {
	t.Run("exactly at limit is unchanged", func(t *testing.T) {
		text := strings.Join(words(MaxDescriptionWords), "\n  ")
		assert.Equal(t, text, TruncateWords(text, MaxDescriptionWords))
	})

	t.Run("over limit is cut and marked", func(t *testing.T) {
		text := strings.Join(words(MaxDescriptionWords+1), "\t")
		want := strings.Join(words(MaxDescriptionWords), " ") + " ..."

		got := TruncateWords(text, MaxDescriptionWords)
		assert.Equal(t, want, got)
		assert.Len(t, strings.Fields(strings.TrimSuffix(got, TruncationMarker)), MaxDescriptionWords)
	})

	t.Run("short text keeps original whitespace", func(t *testing.T) {
		text := "  Smoky   grilled\ncottage cheese.\n"
		assert.Equal(t, text, TruncateWords(text, MaxDescriptionWords))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", TruncateWords("", MaxDescriptionWords))
	})
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	short := writeSource(t, dir, "short.txt", "Crispy and golden.")
	long := writeSource(t, dir, "long.txt", strings.Join(words(600), " "))

	loader := NewLoader(nil)

	assert.Equal(t, "Crispy and golden.", loader.Describe(FoodItem{Name: "Samosa", DescriptionPath: short}))

	got := loader.Describe(FoodItem{Name: "Biryani", DescriptionPath: long})
	assert.True(t, strings.HasSuffix(got, " ..."))
	assert.Len(t, strings.Fields(got), MaxDescriptionWords+1)
}

func TestDescribe_UnreadableFallsBack(t *testing.T) {
	item := FoodItem{Name: "Ghost", DescriptionPath: filepath.Join(t.TempDir(), "missing.txt")}

	assert.Equal(t, "Error loading description.", NewLoader(nil).Describe(item))

	_, err := ReadDescription(item)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDescriptionUnreadable))
}
