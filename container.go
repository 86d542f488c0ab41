package ui

// Container is a box with an optional background color and at most one child.
//
// A dimension left at Inf inherits the child's measured extent, or fills the
// incoming constraints when there is no child.
type Container struct {
	width       float32
	height      float32
	color       Color
	constraints *BoxConstraints
	child       Widget
}

func (*Container) isWidget() {}

// ContainerBuilder configures a Container.
type ContainerBuilder struct {
	c Container
}

// NewContainer starts building a transparent container of unbounded size.
func NewContainer() *ContainerBuilder {
	return &ContainerBuilder{c: Container{
		width:  Inf,
		height: Inf,
		color:  Transparent,
	}}
}

// WithWidth sets the width.
func (b *ContainerBuilder) WithWidth(w float32) *ContainerBuilder {
	b.c.width = w
	return b
}

// WithHeight sets the height.
func (b *ContainerBuilder) WithHeight(h float32) *ContainerBuilder {
	b.c.height = h
	return b
}

// WithSize sets both dimensions.
func (b *ContainerBuilder) WithSize(s Size) *ContainerBuilder {
	b.c.width, b.c.height = s.Width, s.Height
	return b
}

// WithColor sets the background color.
func (b *ContainerBuilder) WithColor(c Color) *ContainerBuilder {
	b.c.color = c
	return b
}

// WithChild sets the child widget.
func (b *ContainerBuilder) WithChild(w Widget) *ContainerBuilder {
	b.c.child = w
	return b
}

// WithConstraints declares constraints reported through Constraints.
// A parent Flex reserves their minimum and caps at their maximum.
func (b *ContainerBuilder) WithConstraints(c BoxConstraints) *ContainerBuilder {
	b.c.constraints = &c
	return b
}

// Build returns the container. The builder may be reused.
func (b *ContainerBuilder) Build() *Container {
	c := b.c
	if c.constraints != nil {
		cc := *c.constraints
		c.constraints = &cc
	}
	return &c
}

// Width returns the declared width, Inf when unset.
func (c *Container) Width() float32 { return c.width }

// Height returns the declared height, Inf when unset.
func (c *Container) Height() float32 { return c.height }

// Color returns the background color.
func (c *Container) Color() Color { return c.color }

// Child returns the child widget, or nil.
func (c *Container) Child() Widget { return c.child }

// Constraints implements Widget.
func (c *Container) Constraints() (BoxConstraints, bool) {
	if c.constraints == nil {
		return BoxConstraints{}, false
	}
	return *c.constraints, true
}

func (c *Container) measure(bc BoxConstraints, ctx *Context) (*Layout, error) {
	if c.child == nil {
		return &Layout{Size: Size{Width: c.width, Height: c.height}.Constrain(bc)}, nil
	}

	// The child sees the same constraints as the container itself.
	child, err := Measure(c.child, bc, ctx)
	if err != nil {
		return nil, err
	}
	size := child.Size
	if isFinite(c.width) {
		size.Width = c.width
	}
	if isFinite(c.height) {
		size.Height = c.height
	}
	return &Layout{
		Size:      size.Constrain(bc),
		Truncated: child.Truncated,
		child:     child,
	}, nil
}

func (c *Container) paint(l *Layout, offset Offset, bc BoxConstraints, ctx *Context) ([]UIShape, error) {
	shapes := []UIShape{{
		Offset: offset,
		Size:   l.Size,
		Shape:  RectangleShape{Color: c.color},
	}}
	if c.child == nil || l.child == nil {
		return shapes, nil
	}
	child, err := Paint(c.child, l.child, offset, bc, ctx)
	if err != nil {
		return nil, err
	}
	return append(shapes, child...), nil
}

func (c *Container) clone() *Container {
	out := *c
	if c.constraints != nil {
		cc := *c.constraints
		out.constraints = &cc
	}
	out.child = Clone(c.child)
	return &out
}
