package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("label-%02d", i)
	}
	return out
}

func TestLayoutSelectorPageSlotInvariant(t *testing.T) {
	for n := 0; n <= 40; n++ {
		items := labels(n)
		for page := 1; page <= 6; page++ {
			layout := LayoutSelectorPage(items, page)
			used := len(layout.Visible)
			if layout.HasPrev {
				used++
			}
			if layout.HasNext {
				used++
			}
			assert.LessOrEqual(t, used, SelectorMaxItems, "n=%d page=%d", n, page)
		}
	}
}

func TestLayoutSelectorPageContiguousOrder(t *testing.T) {
	items := labels(30)
	for page := 1; page <= 4; page++ {
		layout := LayoutSelectorPage(items, page)
		if len(layout.Visible) == 0 {
			continue
		}
		// visible must be a contiguous window of the input, in input order
		first := layout.Visible[0]
		var start int
		for i, l := range items {
			if l == first {
				start = i
				break
			}
		}
		require.Equal(t, items[start:start+len(layout.Visible)], layout.Visible, "page=%d", page)
	}
}

func TestLayoutSelectorPageTwentyThreeItems(t *testing.T) {
	items := labels(23)

	page1 := LayoutSelectorPage(items, 1)
	assert.Len(t, page1.Visible, 11)
	assert.False(t, page1.HasPrev)
	assert.True(t, page1.HasNext)

	page2 := LayoutSelectorPage(items, 2)
	assert.Len(t, page2.Visible, 11)
	assert.True(t, page2.HasPrev)
	assert.True(t, page2.HasNext)

	page3 := LayoutSelectorPage(items, 3)
	assert.Len(t, page3.Visible, 1)
	assert.True(t, page3.HasPrev)
	assert.False(t, page3.HasNext)
	assert.Equal(t, "label-22", page3.Visible[0])
}

func TestLayoutSelectorPageSinglePage(t *testing.T) {
	layout := LayoutSelectorPage(labels(9), 1)
	assert.Len(t, layout.Visible, 9)
	assert.False(t, layout.HasPrev)
	assert.False(t, layout.HasNext)
	assert.Equal(t, SelectorMaxItems, layout.PageSize)
}

func TestLayoutSelectorPageEmptyAndOutOfRange(t *testing.T) {
	layout := LayoutSelectorPage(nil, 1)
	assert.Empty(t, layout.Visible)
	assert.False(t, layout.HasPrev)
	assert.False(t, layout.HasNext)

	layout = LayoutSelectorPage(labels(5), 9)
	assert.Empty(t, layout.Visible)
	assert.True(t, layout.HasPrev)
	assert.False(t, layout.HasNext)

	// page below 1 is clamped
	layout = LayoutSelectorPage(labels(5), 0)
	assert.Len(t, layout.Visible, 5)
}
