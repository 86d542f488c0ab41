// Package scene decodes TOML scene descriptions into widget trees.
//
// A scene names its size and a root node:
//
//	width = 320
//	height = 200
//
//	[root]
//	type = "flex"
//	axis = "vertical"
//
//	[[root.children]]
//	type = "text"
//	text = "hello"
//	font_size = 16
//
//	[[root.children]]
//	type = "container"
//	color = "#3366ff"
//	flex = 1
package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ui"
)

var (
	// ErrUnknownType is returned for a node whose type is not container, flex or text.
	ErrUnknownType = errors.New("scene: unknown node type")

	// ErrInvalidValue is returned for a field value that cannot be used.
	ErrInvalidValue = errors.New("scene: invalid value")
)

// NodeError reports a problem with the node at Path, such as "root.children[1]".
type NodeError struct {
	Path string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// Scene is a decoded scene file.
type Scene struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Root   Node    `toml:"root"`
}

// Bounds is an optional width and height pair.
type Bounds struct {
	Width  *float32 `toml:"width"`
	Height *float32 `toml:"height"`
}

// Node describes one widget. Which fields apply depends on Type.
type Node struct {
	Type string `toml:"type"`

	// Flex is the weight of this node inside a flex parent; 0 makes it fixed.
	Flex int `toml:"flex"`

	// Container fields.
	Width  *float32 `toml:"width"`
	Height *float32 `toml:"height"`
	Color  string   `toml:"color"`
	Min    *Bounds  `toml:"min"`
	Max    *Bounds  `toml:"max"`
	Child  *Node    `toml:"child"`

	// Flex fields.
	Axis            string `toml:"axis"`
	Align           string `toml:"align"`
	Extent          string `toml:"extent"`
	LegacyCentering bool   `toml:"legacy_centering"`
	Children        []Node `toml:"children"`

	// Text fields. Color is shared with containers.
	Text       string  `toml:"text"`
	FontFamily string  `toml:"font_family"`
	FontSize   float32 `toml:"font_size"`
}

// Parse decodes a scene from TOML. Keys the scene format does not know
// are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidValue, strings.Join(keys, ", "))
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("%w: negative scene size %gx%g", ErrInvalidValue, s.Width, s.Height)
	}
	return &s, nil
}

// Load reads and parses the scene at path in fsys.
func Load(fsys fs.FS, path string) (*Scene, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Parse(data)
}

// Constraints returns the root constraints: loose up to the scene size,
// with a zero dimension left unbounded.
func (s *Scene) Constraints() ui.BoxConstraints {
	limit := ui.Size{Width: s.Width, Height: s.Height}
	if limit.Width == 0 {
		limit.Width = ui.Inf
	}
	if limit.Height == 0 {
		limit.Height = ui.Inf
	}
	return ui.Loose(limit)
}

// Build converts the root node into a widget tree.
func (s *Scene) Build() (ui.Widget, error) {
	return s.Root.build("root")
}

func (n *Node) build(path string) (ui.Widget, error) {
	switch strings.ToLower(n.Type) {
	case "container":
		return n.container(path)
	case "flex":
		return n.flex(path)
	case "text":
		return n.text(path)
	case "":
		return nil, &NodeError{Path: path, Err: fmt.Errorf("%w: missing type", ErrUnknownType)}
	default:
		return nil, &NodeError{Path: path, Err: fmt.Errorf("%w %q", ErrUnknownType, n.Type)}
	}
}

func (n *Node) container(path string) (ui.Widget, error) {
	b := ui.NewContainer()
	if n.Width != nil {
		b.WithWidth(*n.Width)
	}
	if n.Height != nil {
		b.WithHeight(*n.Height)
	}
	if n.Color != "" {
		c, err := n.color(path)
		if err != nil {
			return nil, err
		}
		b.WithColor(c)
	}
	if n.Min != nil || n.Max != nil {
		c := ui.Unbounded()
		if n.Min != nil {
			c.Min = n.Min.size(c.Min)
		}
		if n.Max != nil {
			c.Max = n.Max.size(c.Max)
		}
		if err := c.Validate(); err != nil {
			return nil, &NodeError{Path: path, Err: err}
		}
		b.WithConstraints(c)
	}
	if n.Child != nil {
		child, err := n.Child.build(path + ".child")
		if err != nil {
			return nil, err
		}
		b.WithChild(child)
	}
	return b.Build(), nil
}

func (n *Node) flex(path string) (ui.Widget, error) {
	f := ui.NewFlex()

	switch strings.ToLower(n.Axis) {
	case "", "horizontal", "row":
	case "vertical", "column":
		f.WithAxis(ui.Vertical)
	default:
		return nil, n.invalid(path, "axis", n.Axis)
	}

	align, ok := alignments[strings.ToLower(n.Align)]
	if !ok {
		return nil, n.invalid(path, "align", n.Align)
	}
	f.WithMainAxisAlignment(align)

	switch strings.ToLower(n.Extent) {
	case "", "max":
	case "min":
		f.WithMainAxisExtent(ui.ExtentMin)
	default:
		return nil, n.invalid(path, "extent", n.Extent)
	}
	f.WithLegacyCentering(n.LegacyCentering)

	for i := range n.Children {
		child := &n.Children[i]
		w, err := child.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if child.Flex > 0 {
			f.WithFlexChild(w, child.Flex)
		} else {
			f.WithFixedChild(w)
		}
	}
	return f, nil
}

func (n *Node) text(path string) (ui.Widget, error) {
	style := ui.DefaultTextStyle()
	if n.FontFamily != "" {
		style.FontFamily = n.FontFamily
	}
	if n.FontSize != 0 {
		if n.FontSize < 0 {
			return nil, n.invalid(path, "font_size", n.FontSize)
		}
		style.FontSize = n.FontSize
	}
	if n.Color != "" {
		c, err := n.color(path)
		if err != nil {
			return nil, err
		}
		style.Color = c
	}
	return ui.NewText(n.Text).WithStyle(style), nil
}

func (n *Node) color(path string) (ui.Color, error) {
	c, err := ui.ParseHex(n.Color)
	if err != nil {
		return ui.Color{}, &NodeError{Path: path, Err: fmt.Errorf("%w: color: %w", ErrInvalidValue, err)}
	}
	return c, nil
}

func (n *Node) invalid(path, field string, v any) error {
	return &NodeError{Path: path, Err: fmt.Errorf("%w: %s %v", ErrInvalidValue, field, v)}
}

func (b *Bounds) size(def ui.Size) ui.Size {
	if b.Width != nil {
		def.Width = *b.Width
	}
	if b.Height != nil {
		def.Height = *b.Height
	}
	return def
}

var alignments = map[string]ui.AxisAlignment{
	"":              ui.Start,
	"start":         ui.Start,
	"end":           ui.End,
	"center":        ui.Center,
	"space-between": ui.SpaceBetween,
	"space-around":  ui.SpaceAround,
}
