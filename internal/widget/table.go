package widget

// TableSize is the amount of detail table rows render with.
type TableSize int

const (
	SizeNormal TableSize = iota
	SizeMinimized
	SizeMaximized
)

func (s TableSize) String() string {
	switch s {
	case SizeMinimized:
		return "minimized"
	case SizeMaximized:
		return "maximized"
	default:
		return "normal"
	}
}

// TableState is the mutable display state of a table: which row is
// selected, how far the selected row is scrolled, and the render size.
type TableState struct {
	Selected int
	Scroll   ScrollAmount
	Size     TableSize
}

// StatefulTable couples table items with their display state. It keeps
// the unfiltered item set around so a search filter can be undone.
type StatefulTable[T any] struct {
	Items []T
	// DefaultItems is the item set before any filtering.
	DefaultItems []T
	State        TableState
}

// NewStatefulTable returns a table over items with the first row
// selected.
func NewStatefulTable[T any](items []T) *StatefulTable[T] {
	return &StatefulTable[T]{
		Items:        items,
		DefaultItems: items,
	}
}

// SelectedItem returns the currently selected item, or false when the
// table is empty or the selection is out of range.
func (t *StatefulTable[T]) SelectedItem() (T, bool) {
	if t.State.Selected < 0 || t.State.Selected >= len(t.Items) {
		var zero T
		return zero, false
	}
	return t.Items[t.State.Selected], true
}

// Next selects the next item, wrapping to the first after the last.
// Moving the selection resets the row scroll.
func (t *StatefulTable[T]) Next() {
	if len(t.Items) == 0 {
		return
	}
	if t.State.Selected >= len(t.Items)-1 {
		t.State.Selected = 0
	} else {
		t.State.Selected++
	}
	t.ResetScroll()
}

// Previous selects the previous item, wrapping to the last before the
// first. Moving the selection resets the row scroll.
func (t *StatefulTable[T]) Previous() {
	if len(t.Items) == 0 {
		return
	}
	if t.State.Selected == 0 {
		t.State.Selected = len(t.Items) - 1
	} else {
		t.State.Selected--
	}
	t.ResetScroll()
}

// SelectFirst moves the selection to the first item.
func (t *StatefulTable[T]) SelectFirst() {
	t.State.Selected = 0
	t.ResetScroll()
}

// SelectLast moves the selection to the last item.
func (t *StatefulTable[T]) SelectLast() {
	if len(t.Items) == 0 {
		t.State.Selected = 0
	} else {
		t.State.Selected = len(t.Items) - 1
	}
	t.ResetScroll()
}

// ScrollRow adjusts the scroll of the selected row without moving the
// selection. Offsets saturate at zero instead of underflowing.
func (t *StatefulTable[T]) ScrollRow(direction ScrollDirection) {
	switch direction.Kind {
	case ScrollUp:
		t.State.Scroll.Vertical -= direction.Amount
		if t.State.Scroll.Vertical < 0 {
			t.State.Scroll.Vertical = 0
		}
	case ScrollDown:
		t.State.Scroll.Vertical += direction.Amount
	case ScrollLeft:
		t.State.Scroll.Horizontal -= direction.Amount
		if t.State.Scroll.Horizontal < 0 {
			t.State.Scroll.Horizontal = 0
		}
	case ScrollRight:
		t.State.Scroll.Horizontal += direction.Amount
	}
}

// ResetScroll clears the row scroll offsets.
func (t *StatefulTable[T]) ResetScroll() {
	t.State.Scroll = ScrollAmount{}
}

// SetItems replaces the visible and default item sets and resets the
// selection.
func (t *StatefulTable[T]) SetItems(items []T) {
	t.Items = items
	t.DefaultItems = items
	t.State.Selected = 0
	t.ResetScroll()
}

// Filter narrows the visible items without touching the default set.
func (t *StatefulTable[T]) Filter(items []T) {
	t.Items = items
	if t.State.Selected >= len(items) {
		t.State.Selected = 0
	}
}

// ResetState restores the unfiltered item set and selects the first
// row. Used when leaving a search filter.
func (t *StatefulTable[T]) ResetState() {
	t.Items = t.DefaultItems
	t.State.Selected = 0
	t.ResetScroll()
}
