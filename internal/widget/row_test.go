package widget

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRowItemWithinBounds(t *testing.T) {
	lines := []string{"line1", "line2"}
	row := NewRowItem(lines, 10, 4, ScrollAmount{})
	assert.Equal(t, lines, row.Data)
	assert.Equal(t, "line1\nline2", row.Get())
	assert.Equal(t, 2, row.Len())
}

func TestRowItemVerticalScroll(t *testing.T) {
	lines := []string{"l1", "l2", "l3", "l4", "l5"}
	row := NewRowItem(lines, 0, 4, ScrollAmount{Vertical: 1})
	assert.Equal(t, []string{"...", "l3", "l4", "..."}, row.Data)
}

func TestRowItemVerticalScrollPastOverflow(t *testing.T) {
	lines := []string{"l1", "l2", "l3", "l4", "l5"}
	// The offset caps at the overflow so the tail stays visible.
	for _, vertical := range []int{2, 3, 10} {
		row := NewRowItem(lines, 0, 4, ScrollAmount{Vertical: vertical})
		assert.Equal(t, []string{"...", "l4", "l5"}, row.Data, "vertical %d", vertical)
	}
}

func TestRowItemHeightClamp(t *testing.T) {
	lines := []string{"l1", "l2", "l3", "l4", "l5"}
	row := NewRowItem(lines, 0, 3, ScrollAmount{})
	assert.Equal(t, []string{"l1", "l2", "..."}, row.Data)
}

func TestRowItemHorizontalScroll(t *testing.T) {
	row := NewRowItem([]string{"0123456789"}, 5, 4, ScrollAmount{Horizontal: 2})
	assert.Equal(t, []string{".3456.."}, row.Data)

	// Lines shorter than the offset collapse to nothing.
	row = NewRowItem([]string{"0123456789", "ab"}, 5, 4, ScrollAmount{Horizontal: 4})
	assert.Equal(t, []string{".5678..", ""}, row.Data)
}

func TestRowItemHorizontalScrollBelowWidth(t *testing.T) {
	// No line reaches the viewport width, so nothing shifts.
	row := NewRowItem([]string{"abc", "de"}, 10, 4, ScrollAmount{Horizontal: 3})
	assert.Equal(t, []string{"abc", "de"}, row.Data)
}

func TestRowItemWidthClamp(t *testing.T) {
	row := NewRowItem([]string{"0123456789", "short"}, 6, 4, ScrollAmount{})
	assert.Equal(t, []string{"012345..", "short"}, row.Data)
}

func TestRowItemMultibyte(t *testing.T) {
	row := NewRowItem([]string{"héllö wörld"}, 5, 4, ScrollAmount{})
	assert.Equal(t, []string{"héllö.."}, row.Data)

	row = NewRowItem([]string{"héllö wörld"}, 5, 4, ScrollAmount{Horizontal: 2})
	assert.Equal(t, []string{".lö w.."}, row.Data)
}

func TestRowItemEmpty(t *testing.T) {
	row := NewRowItem(nil, 10, 4, ScrollAmount{Vertical: 3, Horizontal: 3})
	assert.Equal(t, 0, row.Len())
	assert.Equal(t, "", row.Get())
}

func TestRowItemZeroHeight(t *testing.T) {
	row := NewRowItem([]string{"l1", "l2"}, 0, 0, ScrollAmount{})
	assert.Equal(t, 0, row.Len())
}

func TestRowItemLayoutIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxWidth := rapid.IntRange(1, 40).Draw(t, "maxWidth")
		maxHeight := rapid.IntRange(1, 10).Draw(t, "maxHeight")
		lines := rapid.SliceOfN(
			rapid.StringN(0, maxWidth, -1),
			1, maxHeight,
		).Draw(t, "lines")
		row := NewRowItem(lines, maxWidth, maxHeight, ScrollAmount{})
		assert.Equal(t, lines, row.Data)
	})
}

func TestRowItemNeverExceedsBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxWidth := rapid.IntRange(1, 20).Draw(t, "maxWidth")
		maxHeight := rapid.IntRange(1, 8).Draw(t, "maxHeight")
		scroll := ScrollAmount{
			Vertical:   rapid.IntRange(0, 10).Draw(t, "vertical"),
			Horizontal: rapid.IntRange(0, 10).Draw(t, "horizontal"),
		}
		lines := rapid.SliceOfN(rapid.String(), 0, 20).Draw(t, "lines")
		row := NewRowItem(lines, maxWidth, maxHeight, scroll)
		assert.LessOrEqual(t, row.Len(), max(maxHeight, len(lines)))
		for i, line := range row.Data {
			assert.LessOrEqual(t, len([]rune(line)), maxWidth+2,
				fmt.Sprintf("line %d: %q", i, line))
		}
	})
}
