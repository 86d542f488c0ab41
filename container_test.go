package ui

import "testing"

func TestContainer_Layout(t *testing.T) {
	loose := Loose(Size{Width: 100, Height: 80})
	tests := []struct {
		name string
		w    *Container
		c    BoxConstraints
		want Size
	}{
		{"fixed size", NewContainer().WithWidth(30).WithHeight(20).Build(), loose, Size{30, 20}},
		{"unbounded fills max", NewContainer().Build(), loose, Size{100, 80}},
		{"clamped to max", NewContainer().WithWidth(300).WithHeight(20).Build(), loose, Size{100, 20}},
		{"clamped to min", NewContainer().WithWidth(5).WithHeight(5).Build(), Tight(Size{40, 40}), Size{40, 40}},
		{
			"inherits child on unset axis",
			NewContainer().WithHeight(50).WithChild(NewContainer().WithWidth(12).WithHeight(7).Build()).Build(),
			loose,
			Size{12, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := measure(t, tt.w, tt.c)
			if l.Size != tt.want {
				t.Errorf("Size = %v, want %v", l.Size, tt.want)
			}
		})
	}
}

func TestContainer_ChildSeesSameConstraints(t *testing.T) {
	// A fixed-size container does not constrain its child.
	child := NewContainer().Build()
	parent := NewContainer().WithWidth(10).WithHeight(10).WithChild(child).Build()
	l := measure(t, parent, Loose(Size{Width: 60, Height: 30}))
	if got := l.Child().Size; got != (Size{60, 30}) {
		t.Errorf("child Size = %v, want 60x30", got)
	}
}

func TestContainer_PaintsBackgroundThenChild(t *testing.T) {
	inner := NewContainer().WithWidth(5).WithHeight(5).WithColor(Red).Build()
	outer := NewContainer().WithWidth(20).WithHeight(20).WithColor(Blue).WithChild(inner).Build()

	frame, err := BuildTree(outer, Loose(Size{Width: 100, Height: 100}), newTestContext())
	if err != nil {
		t.Fatal(err)
	}
	if len(frame.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(frame.Shapes))
	}
	bg, ok := frame.Shapes[0].Shape.(RectangleShape)
	if !ok || bg.Color != Blue || frame.Shapes[0].Size != (Size{20, 20}) {
		t.Errorf("first shape = %+v, want blue 20x20 background", frame.Shapes[0])
	}
	fg, ok := frame.Shapes[1].Shape.(RectangleShape)
	if !ok || fg.Color != Red || frame.Shapes[1].Size != (Size{5, 5}) {
		t.Errorf("second shape = %+v, want red 5x5 child", frame.Shapes[1])
	}
}

func TestContainer_Constraints(t *testing.T) {
	if _, ok := NewContainer().Build().Constraints(); ok {
		t.Error("container without constraints reported some")
	}
	want := BoxConstraints{Min: Size{10, 0}, Max: Size{20, Inf}}
	got, ok := NewContainer().WithConstraints(want).Build().Constraints()
	if !ok || got != want {
		t.Errorf("Constraints() = %v, %v", got, ok)
	}
}

func TestClone_IsDeep(t *testing.T) {
	inner := NewContainer().WithWidth(5).Build()
	orig := NewFlex().WithFixedChild(NewContainer().WithChild(inner).Build())

	cp, ok := Clone(orig).(*Flex)
	if !ok {
		t.Fatal("Clone did not return *Flex")
	}
	orig.WithFixedChild(NewText("more"))
	if cp.Len() != 1 {
		t.Errorf("clone children = %d, want 1", cp.Len())
	}
	cc := cp.children[0].widget.(*Container)
	if cc.Child() == Widget(inner) {
		t.Error("nested child shared between clone and original")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}
