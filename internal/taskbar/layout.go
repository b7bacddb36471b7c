package taskbar

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// Flags for the two positioning calls.
const (
	controlPosFlags = platform.PosShowWindow
	toolbarPosFlags = platform.PosNoOwnerZOrder
)

// PlanLayout computes where the control and the toolbar go for a control of
// the given size. The control's right edge meets the notification area; the
// toolbar keeps its left edge and thickness and ends where the control begins.
func PlanLayout(r *Regions, size model.Size) model.Layout {
	controlX := r.Notify.Desktop.Left - size.Width
	return model.Layout{
		Control: model.Placement{X: controlX, Y: 0, Width: size.Width, Height: size.Height},
		Toolbar: model.Placement{
			X:      r.Toolbar.Desktop.Left,
			Y:      0,
			Width:  controlX - r.Toolbar.Desktop.Left,
			Height: r.Toolbar.Client.Bottom,
		},
	}
}

// ApplyLayout refreshes r, plans the layout for size and issues both
// positioning calls. A failed positioning call is logged and skipped; the
// next resize or taskbar change retries.
func ApplyLayout(shell platform.Shell, r *Regions, control platform.Handle, size model.Size, logger *slog.Logger) (model.Layout, error) {
	if size.Width < 0 || size.Height < 0 {
		return model.Layout{}, fmt.Errorf("%w: negative size %v", ErrInvalidGeometryRequest, size)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := r.Refresh(shell); err != nil {
		return model.Layout{}, err
	}
	l := PlanLayout(r, size)
	if err := shell.SetWindowPos(control, l.Control, controlPosFlags); err != nil {
		logger.Warn("position control", "hwnd", control, "placement", l.Control, "err", err)
	}
	if err := shell.SetWindowPos(r.Toolbar.Handle, l.Toolbar, toolbarPosFlags); err != nil {
		logger.Warn("shrink toolbar", "hwnd", r.Toolbar.Handle, "placement", l.Toolbar, "err", err)
	}
	logger.Debug("layout applied", "size", size, "control", l.Control, "toolbar", l.Toolbar)
	return l, nil
}
