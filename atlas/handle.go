package atlas

import "fmt"

// RectHandle identifies a rectangle independently of its position.
// A handle stays valid until the rectangle is removed; slots are reused after
// removal but with a new generation, so an old handle never aliases a new
// rectangle. The zero RectHandle is never issued.
type RectHandle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero handle.
func (h RectHandle) IsZero() bool {
	return h.generation == 0
}

// String returns a debug representation "index:generation".
func (h RectHandle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.generation)
}

// slot is one entry of the atlas slot map.
type slot struct {
	rect       Rect
	generation uint32
	occupied   bool
	// seq is the insertion order, used to break height ties when packing.
	seq uint64
}

// slotMap stores rectangles behind generation-checked handles.
type slotMap struct {
	slots []slot
	free  []uint32
	live  int
	seq   uint64
}

func (m *slotMap) insert(r Rect) RectHandle {
	m.seq++
	m.live++
	if n := len(m.free); n > 0 {
		idx := m.free[n-1]
		m.free = m.free[:n-1]
		s := &m.slots[idx]
		s.generation++
		s.rect = r
		s.occupied = true
		s.seq = m.seq
		return RectHandle{index: idx, generation: s.generation}
	}
	m.slots = append(m.slots, slot{rect: r, generation: 1, occupied: true, seq: m.seq})
	return RectHandle{index: uint32(len(m.slots) - 1), generation: 1} //nolint:gosec // slot count is bounded by memory
}

func (m *slotMap) get(h RectHandle) (*slot, bool) {
	if h.IsZero() || int(h.index) >= len(m.slots) {
		return nil, false
	}
	s := &m.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil, false
	}
	return s, true
}

func (m *slotMap) remove(h RectHandle) bool {
	s, ok := m.get(h)
	if !ok {
		return false
	}
	s.occupied = false
	s.rect = Rect{}
	m.free = append(m.free, h.index)
	m.live--
	return true
}

// handles returns the live handles in slot order.
func (m *slotMap) handles() []RectHandle {
	out := make([]RectHandle, 0, m.live)
	for i := range m.slots {
		if m.slots[i].occupied {
			out = append(out, RectHandle{index: uint32(i), generation: m.slots[i].generation}) //nolint:gosec // see insert
		}
	}
	return out
}
