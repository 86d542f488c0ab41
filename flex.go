package ui

import (
	"cmp"
	"slices"

	"github.com/gogpu/ui/internal/logging"
)

type flexChild struct {
	widget Widget
	// weight is the flex factor; 0 marks a fixed child.
	weight int
}

func (c flexChild) fixed() bool { return c.weight == 0 }

// Flex lays its children out along one axis.
//
// Fixed children take their measured main-axis extent. Flexible children
// share the rest in proportion to their weights, after each has been given
// the minimum its Constraints declare and capped at the maximum they declare.
type Flex struct {
	axis            Axis
	mainAlignment   AxisAlignment
	crossAlignment  CrossAxisAlignment
	extent          AxisExtent
	legacyCentering bool
	children        []flexChild
}

func (*Flex) isWidget() {}

// FlexLayout is the main-axis distribution computed by measuring a Flex.
// Slices are indexed by child in declaration order.
type FlexLayout struct {
	// Axis is the main axis.
	Axis Axis
	// Extents is each child's main-axis extent.
	Extents []float32
	// Offsets is each child's main-axis offset from the Flex origin.
	Offsets []float32
	// Measured is each child's size from the measuring pass; its cross
	// extent is reused when the child is painted.
	Measured []Size
}

// NewFlex returns an empty horizontal Flex aligned at Start.
func NewFlex() *Flex {
	return &Flex{axis: Horizontal}
}

// WithAxis sets the main axis.
func (f *Flex) WithAxis(axis Axis) *Flex {
	f.axis = axis
	return f
}

// WithMainAxisAlignment sets the main-axis alignment.
func (f *Flex) WithMainAxisAlignment(a AxisAlignment) *Flex {
	f.mainAlignment = a
	return f
}

// WithCrossAxisAlignment records the cross-axis alignment.
func (f *Flex) WithCrossAxisAlignment(a CrossAxisAlignment) *Flex {
	f.crossAlignment = a
	return f
}

// WithMainAxisExtent sets the main-axis extent mode.
func (f *Flex) WithMainAxisExtent(e AxisExtent) *Flex {
	f.extent = e
	return f
}

// WithLegacyCentering makes SpaceBetween and SpaceAround behave like Center.
func (f *Flex) WithLegacyCentering(on bool) *Flex {
	f.legacyCentering = on
	return f
}

// WithFixedChild appends a child that keeps its measured main-axis extent.
func (f *Flex) WithFixedChild(w Widget) *Flex {
	f.children = append(f.children, flexChild{widget: w})
	return f
}

// WithFlexChild appends a child sharing free space with weight flex.
// Weights below 1 are treated as 1.
func (f *Flex) WithFlexChild(w Widget, flex int) *Flex {
	f.children = append(f.children, flexChild{widget: w, weight: max(flex, 1)})
	return f
}

// Axis returns the main axis.
func (f *Flex) Axis() Axis { return f.axis }

// MainAxisAlignment returns the main-axis alignment.
func (f *Flex) MainAxisAlignment() AxisAlignment { return f.mainAlignment }

// CrossAxisAlignment returns the recorded cross-axis alignment.
func (f *Flex) CrossAxisAlignment() CrossAxisAlignment { return f.crossAlignment }

// Len returns the number of children.
func (f *Flex) Len() int { return len(f.children) }

// Constraints implements Widget. A Flex declares no constraints.
func (f *Flex) Constraints() (BoxConstraints, bool) {
	return BoxConstraints{}, false
}

func (f *Flex) measure(c BoxConstraints, ctx *Context) (*Layout, error) {
	n := len(f.children)
	fl := &FlexLayout{
		Axis:     f.axis,
		Extents:  make([]float32, n),
		Measured: make([]Size, n),
	}
	out := &Layout{flex: fl}

	// Children are measured with the parent's constraints, loosened on the
	// main axis so a tight parent does not stretch every child to its width.
	childC := c.LoosenOnAxis(f.axis)
	var fixedSum float32
	for i, ch := range f.children {
		l, err := Measure(ch.widget, childC, ctx)
		if err != nil {
			return nil, err
		}
		fl.Measured[i] = l.Size
		out.Truncated = out.Truncated || l.Truncated
		if ch.fixed() {
			fl.Extents[i] = l.Size.OnAxis(f.axis)
			fixedSum += fl.Extents[i]
		}
	}

	mainMax := c.MaxOnAxis(f.axis)
	if err := f.distribute(fl.Extents, mainMax, fixedSum); err != nil {
		return nil, err
	}
	fl.Offsets = alignOffsets(fl.Extents, mainMax, f.mainAlignment, f.extent, f.legacyCentering)

	var main, cross float32
	for i := range f.children {
		main += fl.Extents[i]
		cross = max(cross, fl.Measured[i].OnAxis(f.axis.Cross()))
	}
	out.Size = SizeOnAxis(f.axis, main, cross).Constrain(c)

	logging.Logger().Debug("flex layout",
		"axis", f.axis.String(),
		"children", n,
		"available", mainMax-fixedSum,
		"extents", fl.Extents,
		"offsets", fl.Offsets)
	return out, nil
}

// distribute fills in the extents of flexible children.
//
// Every flexible child first receives the minimum it declares. Children that
// declare a finite maximum are then visited once, in ascending order of that
// maximum: a child whose proportional share would exceed its maximum is
// capped and leaves the weight pool, and the rest of its share goes back to
// the pool. The remaining children split what is left by weight.
//
// A child visited before a later one is capped is not revisited, so it may
// end up above its own maximum when several bounded children interact.
func (f *Flex) distribute(extents []float32, mainMax, fixedSum float32) error {
	type bounded struct {
		index    int
		min, max float32
	}

	var (
		flexIdx  []int
		caps     []bounded
		mins     = make(map[int]float32)
		reserved float32
		weights  float32
	)
	for i, ch := range f.children {
		if ch.fixed() {
			continue
		}
		flexIdx = append(flexIdx, i)
		weights += float32(ch.weight)
		if bc, ok := ch.widget.Constraints(); ok {
			lo := bc.MinOnAxis(f.axis)
			if lo > 0 {
				mins[i] = lo
				reserved += lo
			}
			if bc.BoundMax(f.axis) {
				caps = append(caps, bounded{index: i, min: mins[i], max: bc.MaxOnAxis(f.axis)})
			}
		}
	}
	if len(flexIdx) == 0 {
		return nil
	}

	var remaining float32
	if isFinite(mainMax) {
		remaining = mainMax - fixedSum - reserved
		if remaining <= 0 {
			return &InsufficientSpaceError{
				Axis:      f.axis,
				Required:  fixedSum + reserved,
				Available: mainMax,
			}
		}
	}

	slices.SortStableFunc(caps, func(a, b bounded) int {
		return cmp.Compare(a.max, b.max)
	})
	capped := make(map[int]bool, len(caps))
	for _, b := range caps {
		w := float32(f.children[b.index].weight)
		share := w/weights*remaining + b.min
		if share > b.max {
			extents[b.index] = b.max
			capped[b.index] = true
			remaining -= b.max - b.min
			weights -= w
		}
	}

	for _, i := range flexIdx {
		if capped[i] {
			continue
		}
		w := float32(f.children[i].weight)
		extents[i] = w/weights*remaining + mins[i]
	}
	return nil
}

func (f *Flex) paint(fl *FlexLayout, offset Offset, ctx *Context) ([]UIShape, error) {
	var shapes []UIShape
	for i, ch := range f.children {
		size := fl.Measured[i].SetOnAxis(f.axis, fl.Extents[i])
		tight := Tight(size)
		l, err := Measure(ch.widget, tight, ctx)
		if err != nil {
			return nil, err
		}
		child, err := Paint(ch.widget, l, offset, tight, ctx)
		if err != nil {
			return nil, err
		}
		slot := OffsetOnAxis(f.axis, fl.Offsets[i])
		for _, s := range child {
			shapes = append(shapes, s.OffsetBy(slot))
		}
	}
	return shapes, nil
}

func (f *Flex) clone() *Flex {
	out := *f
	out.children = make([]flexChild, len(f.children))
	for i, ch := range f.children {
		out.children[i] = flexChild{widget: Clone(ch.widget), weight: ch.weight}
	}
	return &out
}
