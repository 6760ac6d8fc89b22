package widget

// RowItem is a multi-line table cell laid out for a viewport. The
// layout runs once at construction; Data holds the lines that should
// actually be rendered.
type RowItem struct {
	// Data is the processed row data.
	Data []string

	maxWidth       int
	maxHeight      int
	heightOverflow int
	scroll         ScrollAmount
}

// NewRowItem lays out the given lines for a viewport of maxHeight
// lines and, when maxWidth is positive, maxWidth characters. The
// scroll amount shifts the visible window; hidden content is marked
// with truncation dots.
func NewRowItem(data []string, maxWidth, maxHeight int, scroll ScrollAmount) RowItem {
	overflow := len(data) - maxHeight
	if overflow < 0 {
		overflow = 0
	}
	item := RowItem{
		Data:           data,
		maxWidth:       maxWidth,
		maxHeight:      maxHeight,
		heightOverflow: overflow + 1,
		scroll:         scroll,
	}
	item.process()
	return item
}

// Get returns the processed lines joined with newlines.
func (r *RowItem) Get() string {
	out := ""
	for i, line := range r.Data {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// Len returns the number of visible lines.
func (r *RowItem) Len() int {
	return len(r.Data)
}

func (r *RowItem) process() {
	if r.heightOverflow != 1 {
		if r.scroll.Vertical != 0 {
			r.scrollVertical()
		}
		if r.scroll.Vertical < r.heightOverflow {
			r.limitHeight()
		}
	}
	if r.maxWidth > 0 {
		if r.scroll.Horizontal != 0 && r.longestLine() >= r.maxWidth {
			r.scrollHorizontal()
		}
		r.limitWidth()
	}
}

func (r *RowItem) longestLine() int {
	longest := 0
	for _, line := range r.Data {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return longest
}

// scrollVertical drops the hidden leading lines and marks the first
// visible line with "...". The offset is capped at the overflow so the
// last page stays reachable.
func (r *RowItem) scrollVertical() {
	skip := r.scroll.Vertical
	if skip > r.heightOverflow {
		skip = r.heightOverflow
	}
	if skip > len(r.Data) {
		skip = len(r.Data)
	}
	data := make([]string, 0, len(r.Data)-skip)
	for i, line := range r.Data[skip:] {
		if i == 0 {
			line = "..."
		}
		data = append(data, line)
	}
	r.Data = data
}

// scrollHorizontal drops the hidden leading characters of every line
// and prefixes a single truncation dot. Lines shorter than the offset
// collapse to nothing.
func (r *RowItem) scrollHorizontal() {
	data := make([]string, 0, len(r.Data))
	for _, line := range r.Data {
		runes := []rune(line)
		if len(runes) > r.scroll.Horizontal+1 {
			data = append(data, "."+string(runes[r.scroll.Horizontal+1:]))
		} else {
			data = append(data, "")
		}
	}
	r.Data = data
}

// limitWidth clamps every line to the maximum width, appending ".."
// where characters were cut off.
func (r *RowItem) limitWidth() {
	data := make([]string, 0, len(r.Data))
	for _, line := range r.Data {
		runes := []rune(line)
		if len(runes) > r.maxWidth {
			data = append(data, string(runes[:r.maxWidth])+"..")
		} else {
			data = append(data, line)
		}
	}
	r.Data = data
}

// limitHeight keeps the first maxHeight lines and replaces the last
// kept line with "...".
func (r *RowItem) limitHeight() {
	height := r.maxHeight
	if height > len(r.Data) {
		height = len(r.Data)
	}
	data := make([]string, 0, height)
	for i, line := range r.Data[:height] {
		if i == height-1 {
			line = "..."
		}
		data = append(data, line)
	}
	r.Data = data
}
