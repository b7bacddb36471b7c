package model

import "testing"

func TestRect_WidthHeight(t *testing.T) {
	r := Rect{Left: 1800, Top: 1040, Right: 1920, Bottom: 1080}
	if r.Width() != 120 {
		t.Errorf("width: got %d, want 120", r.Width())
	}
	if r.Height() != 40 {
		t.Errorf("height: got %d, want 40", r.Height())
	}
	if r.Empty() {
		t.Error("rect should not be empty")
	}
}

func TestRect_InvertedIsEmpty(t *testing.T) {
	r := Rect{Left: 100, Right: 50, Top: 0, Bottom: 40}
	if r.Width() != -50 {
		t.Errorf("width: got %d, want -50", r.Width())
	}
	if !r.Empty() {
		t.Error("inverted rect should be empty")
	}
}

func TestRect_Bounds(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 50}
	if got := r.Bounds(); got != [4]int{10, 20, 100, 30} {
		t.Errorf("bounds: got %v", got)
	}
}

func TestSize_IsEmpty(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{}, true},
		{Size{Width: 10}, false},
		{Size{Height: 10}, false},
		{Size{Width: 200, Height: 50}, false},
	}
	for _, tt := range tests {
		if got := tt.size.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty(): got %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestPlacement_Rect(t *testing.T) {
	p := Placement{X: 1680, Y: 0, Width: 120, Height: 40}
	want := Rect{Left: 1680, Top: 0, Right: 1800, Bottom: 40}
	if got := p.Rect(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEventKind_String(t *testing.T) {
	if got := EventObjectReorder.String(); got != "object.reorder" {
		t.Errorf("got %q", got)
	}
	if got := EventKind(0x4E01).String(); got != "event(0x4E01)" {
		t.Errorf("got %q", got)
	}
}
