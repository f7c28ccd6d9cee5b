package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	t.Run("single page shows nothing", func(t *testing.T) {
		w := Window(1, 1)
		assert.False(t, w.Show)
		assert.Empty(t, w.Pages)
	})

	t.Run("few pages show all of them", func(t *testing.T) {
		w := Window(3, 4)
		assert.True(t, w.Show)
		assert.Equal(t, []int{1, 2, 3, 4}, w.Pages)
	})

	t.Run("clamped at the start", func(t *testing.T) {
		w := Window(1, 10)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)

		w = Window(2, 10)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	})

	t.Run("clamped at the end", func(t *testing.T) {
		w := Window(10, 10)
		assert.Equal(t, []int{6, 7, 8, 9, 10}, w.Pages)

		w = Window(9, 10)
		assert.Equal(t, []int{6, 7, 8, 9, 10}, w.Pages)
	})

	t.Run("centered in the middle", func(t *testing.T) {
		w := Window(5, 10)
		assert.Equal(t, []int{3, 4, 5, 6, 7}, w.Pages)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(10))
	assert.Equal(t, 2, TotalPages(11))
	assert.Equal(t, 2, TotalPages(20))
	assert.Equal(t, 5, TotalPages(41))
}
