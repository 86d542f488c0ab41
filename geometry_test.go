package ui

import (
	"errors"
	"testing"
)

func TestSize_Constrain(t *testing.T) {
	c := BoxConstraints{Min: Size{10, 10}, Max: Size{100, 50}}
	tests := []struct {
		in, want Size
	}{
		{Size{5, 5}, Size{10, 10}},
		{Size{50, 20}, Size{50, 20}},
		{Size{Inf, Inf}, Size{100, 50}},
		{Size{200, 0}, Size{100, 10}},
	}
	for _, tt := range tests {
		if got := tt.in.Constrain(c); got != tt.want {
			t.Errorf("%v.Constrain(%v) = %v, want %v", tt.in, c, got, tt.want)
		}
	}
}

func TestSize_Axis(t *testing.T) {
	s := Size{Width: 3, Height: 4}
	if s.OnAxis(Horizontal) != 3 || s.OnAxis(Vertical) != 4 {
		t.Errorf("OnAxis wrong for %v", s)
	}
	if got := s.SetOnAxis(Vertical, 9); got != (Size{3, 9}) {
		t.Errorf("SetOnAxis = %v", got)
	}
	if got := SizeOnAxis(Vertical, 7, 2); got != (Size{2, 7}) {
		t.Errorf("SizeOnAxis = %v", got)
	}
	if Horizontal.Cross() != Vertical || Vertical.Cross() != Horizontal {
		t.Error("Cross() wrong")
	}
}

func TestBoxConstraints_Projections(t *testing.T) {
	c := BoxConstraints{Min: Size{1, 0}, Max: Size{Inf, 8}}
	if c.MinOnAxis(Horizontal) != 1 || c.MaxOnAxis(Vertical) != 8 {
		t.Errorf("projections wrong for %v", c)
	}
	if c.BoundMax(Horizontal) || !c.BoundMax(Vertical) {
		t.Error("BoundMax wrong")
	}
	if !c.BoundMin(Horizontal) || c.BoundMin(Vertical) {
		t.Error("BoundMin wrong")
	}
	if !Tight(Size{2, 2}).IsTight() || c.IsTight() {
		t.Error("IsTight wrong")
	}
	if got := Tight(Size{5, 6}).LoosenOnAxis(Horizontal); got.Min != (Size{0, 6}) {
		t.Errorf("LoosenOnAxis = %v", got)
	}
}

func TestBoxConstraints_Validate(t *testing.T) {
	tests := map[string]struct {
		c       BoxConstraints
		wantErr bool
	}{
		"tight":        {Tight(Size{10, 10}), false},
		"unbounded":    {Unbounded(), false},
		"min over max": {BoxConstraints{Min: Size{20, 0}, Max: Size{10, 10}}, true},
		"negative":     {BoxConstraints{Min: Size{-1, 0}, Max: Size{10, 10}}, true},
		"infinite min": {BoxConstraints{Min: Size{0, Inf}, Max: Size{10, Inf}}, true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformedConstraints) {
				t.Errorf("error %v does not wrap ErrMalformedConstraints", err)
			}
		})
	}
}

func TestOffset_Add(t *testing.T) {
	got := Offset{DX: 1, DY: 2}.Add(OffsetOnAxis(Vertical, 5))
	if got != (Offset{DX: 1, DY: 7}) {
		t.Errorf("Add = %v", got)
	}
}
