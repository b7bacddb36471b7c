package model

import "fmt"

// Rect is a window rectangle in signed pixel coordinates. Left < Right is not
// enforced; a failed or stale lookup can produce an inverted rect.
type Rect struct {
	Left   int32 `yaml:"left"   json:"left"`
	Top    int32 `yaml:"top"    json:"top"`
	Right  int32 `yaml:"right"  json:"right"`
	Bottom int32 `yaml:"bottom" json:"bottom"`
}

// Width returns Right - Left, which may be negative.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top, which may be negative.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Empty reports whether the rect encloses no area.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Bounds returns the rect as [x, y, width, height].
func (r Rect) Bounds() [4]int {
	return [4]int{int(r.Left), int(r.Top), int(r.Width()), int(r.Height())}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Size is a width/height pair. The zero Size means "no preference".
type Size struct {
	Width  int32 `yaml:"width"  json:"width"`
	Height int32 `yaml:"height" json:"height"`
}

// IsEmpty reports whether both dimensions are zero.
func (s Size) IsEmpty() bool { return s.Width == 0 && s.Height == 0 }

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Placement is a window position in the (x, y, cx, cy) form taken by
// SetWindowPos.
type Placement struct {
	X      int32 `yaml:"x"      json:"x"`
	Y      int32 `yaml:"y"      json:"y"`
	Width  int32 `yaml:"width"  json:"width"`
	Height int32 `yaml:"height" json:"height"`
}

// Rect converts the placement to a Rect.
func (p Placement) Rect() Rect {
	return Rect{Left: p.X, Top: p.Y, Right: p.X + p.Width, Bottom: p.Y + p.Height}
}

// Layout holds the two placements applied on every reposition: the embedded
// control and the shrunken toolbar.
type Layout struct {
	Control Placement `yaml:"control" json:"control"`
	Toolbar Placement `yaml:"toolbar" json:"toolbar"`
}
