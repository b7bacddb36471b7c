package taskbar

import (
	"fmt"
	"math"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/model"
)

// Sizing selects how ComputeAvailableSize treats a request.
type Sizing int

const (
	// SizingFillGap returns the full icon-area-to-tray gap for any non-empty
	// request and applies the aspect rule only to the empty request.
	SizingFillGap Sizing = iota
	// SizingAspect applies the aspect rule to every request.
	SizingAspect
)

// ParseSizing maps a config sizing name to a Sizing.
func ParseSizing(s string) (Sizing, error) {
	switch s {
	case "", config.SizingFillGap:
		return SizingFillGap, nil
	case config.SizingAspect:
		return SizingAspect, nil
	default:
		return SizingFillGap, fmt.Errorf("unknown sizing %q (use %s or %s)", s, config.SizingFillGap, config.SizingAspect)
	}
}

func (s Sizing) String() string {
	if s == SizingAspect {
		return config.SizingAspect
	}
	return config.SizingFillGap
}

// ComputeAvailableSize returns the size the control can occupy for req,
// using the cached rects of r. Call r.Refresh first.
//
// Fill-gap returns Size{Width: thickness, Height: gap} for a non-empty
// request, ignoring its aspect ratio. Whether that is intended is an open
// product question; SizingAspect is the alternative.
func ComputeAvailableSize(r *Regions, req model.Size, mode Sizing) (model.Size, error) {
	if req.Width < 0 || req.Height < 0 {
		return model.Size{}, fmt.Errorf("%w: negative size %v", ErrInvalidGeometryRequest, req)
	}
	if mode == SizingFillGap && !req.IsEmpty() {
		return model.Size{Width: r.Thickness(), Height: r.Gap()}, nil
	}
	return aspectFit(req, r.Thickness())
}

// aspectFit clamps req to the taskbar thickness, keeping its aspect ratio.
func aspectFit(req model.Size, thickness int32) (model.Size, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return model.Size{}, fmt.Errorf("%w: aspect ratio needs positive width and height, got %v", ErrInvalidGeometryRequest, req)
	}
	if thickness >= req.Height {
		return req, nil
	}
	w := math.Round(float64(thickness) * float64(req.Width) / float64(req.Height))
	if w > math.MaxInt32 || w < 1 {
		return model.Size{}, fmt.Errorf("%w: %v does not fit thickness %d", ErrInvalidGeometryRequest, req, thickness)
	}
	return model.Size{Width: int32(w), Height: thickness}, nil
}
