package ui

import "fmt"

// AxisAlignment positions children along the main axis of a Flex.
type AxisAlignment uint8

const (
	// Start packs children against the start of the main axis.
	Start AxisAlignment = iota
	// End packs children against the end of the main axis.
	End
	// Center packs children in the middle of the main axis.
	Center
	// SpaceBetween puts the free space evenly between children, none at the ends.
	SpaceBetween
	// SpaceAround puts equal free space around each child, half of it at the ends.
	SpaceAround
)

// String returns the string representation of the alignment.
func (a AxisAlignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Center:
		return "Center"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceAround:
		return "SpaceAround"
	default:
		return fmt.Sprintf("AxisAlignment(%d)", a)
	}
}

// CrossAxisAlignment positions children across the main axis.
//
// It is recorded on a Flex but layout currently always uses Start: the cross
// extent of a Flex is that of its largest child and every child is painted
// at cross offset 0.
type CrossAxisAlignment uint8

const (
	// CrossStart aligns children at the start of the cross axis.
	CrossStart CrossAxisAlignment = iota
	// CrossEnd aligns children at the end of the cross axis.
	CrossEnd
	// CrossCenter centers children on the cross axis.
	CrossCenter
	// CrossStretch stretches children to the cross extent.
	CrossStretch
)

// AxisExtent selects how much main-axis space a Flex claims when aligning.
type AxisExtent uint8

const (
	// ExtentMax aligns children within the full main-axis maximum.
	ExtentMax AxisExtent = iota
	// ExtentMin claims only the space the children use; every alignment
	// then degrades to Start.
	ExtentMin
)

// alignOffsets returns the main-axis offset of every child given their
// extents and the span they are aligned in. A non-finite span or negative
// free space aligns as Start.
func alignOffsets(extents []float32, span float32, align AxisAlignment, extent AxisExtent, legacy bool) []float32 {
	offsets := make([]float32, len(extents))
	var total float32
	for i, e := range extents {
		offsets[i] = total
		total += e
	}

	free := span - total
	if extent == ExtentMin || !isFinite(span) || free <= 0 || len(extents) == 0 {
		return offsets
	}
	if legacy && (align == SpaceBetween || align == SpaceAround) {
		align = Center
	}

	n := float32(len(extents))
	switch align {
	case End:
		shift(offsets, free, 0)
	case Center:
		shift(offsets, free/2, 0)
	case SpaceBetween:
		if len(extents) > 1 {
			shift(offsets, 0, free/(n-1))
		}
	case SpaceAround:
		gap := free / n
		shift(offsets, gap/2, gap)
	}
	return offsets
}

// shift moves offset i by lead + i*gap.
func shift(offsets []float32, lead, gap float32) {
	for i := range offsets {
		offsets[i] += lead + float32(i)*gap
	}
}
