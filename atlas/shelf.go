package atlas

// shelfPacker implements the row placement used by Atlas.Pack.
//
// The packer organizes rectangles in horizontal shelves. Each shelf has the
// height of the first (tallest, since input is sorted by descending height)
// rectangle placed on it. Rectangles are placed left-to-right on the current
// shelf until the next one would cross the right edge; then a new shelf is
// started directly below, so shelves never leave vertical gaps.
type shelfPacker struct {
	width    int     // Total width of the atlas
	shelves  []shelf // Shelves in top-to-bottom order
	usedArea int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// reset clears all placements and sets the shelf width.
func (p *shelfPacker) reset(width int) {
	p.width = width
	p.shelves = p.shelves[:0] // Keep capacity
	p.usedArea = 0
}

// place assigns a position to a w×h rectangle.
// A rectangle that does not fit in the remaining width of the current shelf
// opens a new shelf, unless the current shelf is still empty.
func (p *shelfPacker) place(w, h int) (x, y int) {
	if len(p.shelves) == 0 {
		p.shelves = append(p.shelves, shelf{height: h})
	}
	cur := &p.shelves[len(p.shelves)-1]
	if w > p.currentShelfRemainingWidth() && cur.x > 0 {
		p.shelves = append(p.shelves, shelf{y: cur.y + cur.height, height: h})
		cur = &p.shelves[len(p.shelves)-1]
	}

	x, y = cur.x, cur.y
	cur.x += w
	if h > cur.height {
		cur.height = h
	}
	p.usedArea += w * h
	return x, y
}

// height returns the bottom edge of the last shelf.
func (p *shelfPacker) height() int {
	if len(p.shelves) == 0 {
		return 0
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height
}

// shelfCount returns the number of shelves currently in use.
func (p *shelfPacker) shelfCount() int {
	return len(p.shelves)
}

// utilization returns the fraction of the packed area covered by rectangles.
func (p *shelfPacker) utilization() float64 {
	total := p.width * p.height()
	if total <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}

// currentShelfRemainingWidth returns the remaining width on the last shelf.
func (p *shelfPacker) currentShelfRemainingWidth() int {
	if len(p.shelves) == 0 {
		return p.width
	}
	last := p.shelves[len(p.shelves)-1]
	if last.x >= p.width {
		return 0
	}
	return p.width - last.x
}
