// Package widget holds the table/list selection state and the row
// layout engine that prepares multi-line cell content for rendering.
package widget

import (
	"fmt"
	"strconv"
	"strings"
)

// ScrollKind is the direction of a scroll request.
type ScrollKind int

const (
	ScrollUp ScrollKind = iota
	ScrollDown
	ScrollLeft
	ScrollRight
	ScrollTop
	ScrollBottom
)

// ScrollDirection is a scroll request: a direction plus an offset.
// Top and Bottom ignore the amount.
type ScrollDirection struct {
	Kind   ScrollKind
	Amount int
}

func (d ScrollDirection) String() string {
	switch d.Kind {
	case ScrollUp:
		return fmt.Sprintf("up %d", d.Amount)
	case ScrollDown:
		return fmt.Sprintf("down %d", d.Amount)
	case ScrollLeft:
		return fmt.Sprintf("left %d", d.Amount)
	case ScrollRight:
		return fmt.Sprintf("right %d", d.Amount)
	case ScrollTop:
		return "top"
	default:
		return "bottom"
	}
}

// ParseScrollDirection reads a direction token with an optional trailing
// amount (default 1), e.g. "up", "d 5", "top".
func ParseScrollDirection(s string) (ScrollDirection, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ScrollDirection{}, fmt.Errorf("empty scroll direction")
	}
	amount := 1
	if len(fields) > 1 {
		if v, err := strconv.Atoi(fields[1]); err == nil && v >= 0 {
			amount = v
		}
	}
	switch fields[0] {
	case "up", "u":
		return ScrollDirection{Kind: ScrollUp, Amount: amount}, nil
	case "down", "d":
		return ScrollDirection{Kind: ScrollDown, Amount: amount}, nil
	case "left", "l":
		return ScrollDirection{Kind: ScrollLeft, Amount: amount}, nil
	case "right", "r":
		return ScrollDirection{Kind: ScrollRight, Amount: amount}, nil
	case "top", "t":
		return ScrollDirection{Kind: ScrollTop}, nil
	case "bottom", "b":
		return ScrollDirection{Kind: ScrollBottom}, nil
	default:
		return ScrollDirection{}, fmt.Errorf("invalid scroll direction %q", fields[0])
	}
}

// ScrollAmount is the vertical/horizontal offset of a scrollable widget.
type ScrollAmount struct {
	Vertical   int
	Horizontal int
}
