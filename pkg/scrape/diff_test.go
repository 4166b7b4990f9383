package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSold(t *testing.T) {
	t.Run("Detects Missing Items", func(t *testing.T) {
		prev := &Snapshot{IDs: []string{"1001", "1002", "1003"}}
		curr := &Snapshot{IDs: []string{"1001", "1003"}}

		assert.Equal(t, []string{"1002"}, Sold(prev, curr))
	})

	t.Run("New Items Are Not Sold", func(t *testing.T) {
		prev := &Snapshot{IDs: []string{"1001"}}
		curr := &Snapshot{IDs: []string{"1001", "1002"}}

		assert.Empty(t, Sold(prev, curr))
	})

	t.Run("Sorted Output", func(t *testing.T) {
		prev := &Snapshot{IDs: []string{"1009", "1001", "1005"}}
		curr := &Snapshot{IDs: []string{}}

		assert.Equal(t, []string{"1001", "1005", "1009"}, Sold(prev, curr))
	})

	t.Run("Nil Snapshots", func(t *testing.T) {
		assert.Nil(t, Sold(nil, &Snapshot{}))
		assert.Nil(t, Sold(&Snapshot{}, nil))
	})
}
