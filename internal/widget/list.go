package widget

// StatefulList is a selectable list with wrap-around navigation, used
// for the options menu and similar overlays.
type StatefulList[T any] struct {
	Items    []T
	Selected int
}

// NewStatefulList returns a list over items with the first item
// selected.
func NewStatefulList[T any](items []T) *StatefulList[T] {
	return &StatefulList[T]{Items: items}
}

// SelectedItem returns the currently selected item, or false when the
// list is empty.
func (l *StatefulList[T]) SelectedItem() (T, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		var zero T
		return zero, false
	}
	return l.Items[l.Selected], true
}

// Next selects the next item, wrapping to the first after the last.
func (l *StatefulList[T]) Next() {
	if len(l.Items) == 0 {
		return
	}
	if l.Selected >= len(l.Items)-1 {
		l.Selected = 0
	} else {
		l.Selected++
	}
}

// Previous selects the previous item, wrapping to the last before the
// first.
func (l *StatefulList[T]) Previous() {
	if len(l.Items) == 0 {
		return
	}
	if l.Selected == 0 {
		l.Selected = len(l.Items) - 1
	} else {
		l.Selected--
	}
}
