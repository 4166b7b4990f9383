package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIDs(t *testing.T) {
	t.Run("Extracts Sorted Unique IDs", func(t *testing.T) {
		html := `
			<div class="item">Vintage jacket (1204)</div>
			<div class="item">Silk scarf (1031)</div>
			<div class="item">Vintage jacket (1204)</div>
			<span>price 12,50</span>
		`
		ids := ExtractIDs(html)
		assert.Equal(t, []string{"1031", "1204"}, ids)
	})

	t.Run("Ignores Non 4-Digit Numbers", func(t *testing.T) {
		html := `(12) (123) (12345) price (2024)`
		ids := ExtractIDs(html)
		assert.Contains(t, ids, "2024")
		assert.NotContains(t, ids, "1234", "five digits in parentheses is not an item ID")
		assert.NotContains(t, ids, "123")
		assert.NotContains(t, ids, "12")
	})

	t.Run("Empty Page", func(t *testing.T) {
		assert.Empty(t, ExtractIDs("<html><body></body></html>"))
	})
}

func TestMergeIDs(t *testing.T) {
	merged := MergeIDs([]string{"1002", "1001"}, []string{"1003", "1001"})
	assert.Equal(t, []string{"1001", "1002", "1003"}, merged)

	assert.Equal(t, []string{"1001"}, MergeIDs(nil, []string{"1001"}))
	assert.Empty(t, MergeIDs(nil, nil))
}
