package catalog

import (
	"fmt"
	"os"
	"strings"
)

const (
	MaxDescriptionWords = 500
	TruncationMarker    = " ..."
	DescriptionFallback = "Error loading description."
)

// ReadDescription returns the full text of the item's description file.
func ReadDescription(item FoodItem) (string, error) {
	data, err := os.ReadFile(item.DescriptionPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDescriptionUnreadable, item.DescriptionPath, err)
	}
	return string(data), nil
}

// TruncateWords keeps text with at most limit whitespace-delimited tokens as-is.
// Longer text is cut to the first limit tokens, single-space joined, plus TruncationMarker.
func TruncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + TruncationMarker
}

// Describe produces the display text for an item. It never fails: an unreadable
// description yields DescriptionFallback.
func (l *Loader) Describe(item FoodItem) string {
	text, err := ReadDescription(item)
	if err != nil {
		l.logger.Warning("CatalogLoader", "description unreadable", map[string]interface{}{
			"item":  item.Name,
			"path":  item.DescriptionPath,
			"error": err.Error(),
		})
		return DescriptionFallback
	}
	return TruncateWords(text, MaxDescriptionWords)
}
