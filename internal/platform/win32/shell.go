//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// Shell implements platform.Shell on top of user32.
type Shell struct{}

// NewShell creates a Win32 shell backend.
func NewShell() *Shell {
	return &Shell{}
}

func (s *Shell) FindWindow(parent platform.Handle, class string) (platform.Handle, error) {
	cls, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0, fmt.Errorf("class %q: %w", class, err)
	}
	ret, _, _ := procFindWindowExW.Call(uintptr(parent), 0, uintptr(unsafe.Pointer(cls)), 0)
	if ret == 0 {
		return 0, fmt.Errorf("%w: class %q under %v", platform.ErrWindowNotFound, class, parent)
	}
	return platform.Handle(ret), nil
}

func (s *Shell) FindWindowByTitle(title string) (platform.Handle, error) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("title %q: %w", title, err)
	}
	ret, _, _ := procFindWindowExW.Call(0, 0, 0, uintptr(unsafe.Pointer(t)))
	if ret == 0 {
		return 0, fmt.Errorf("%w: title %q", platform.ErrWindowNotFound, title)
	}
	return platform.Handle(ret), nil
}

func (s *Shell) WindowThreadProcessID(h platform.Handle) (uint32, uint32, error) {
	var pid uint32
	tid := win.GetWindowThreadProcessId(win.HWND(h), &pid)
	if tid == 0 {
		return 0, 0, fmt.Errorf("GetWindowThreadProcessId failed for %v", h)
	}
	return tid, pid, nil
}

func (s *Shell) WindowRect(h platform.Handle) (model.Rect, error) {
	var r win.RECT
	if !win.GetWindowRect(win.HWND(h), &r) {
		return model.Rect{}, fmt.Errorf("GetWindowRect failed for %v", h)
	}
	return fromRECT(r), nil
}

func (s *Shell) ClientRect(h platform.Handle) (model.Rect, error) {
	var r win.RECT
	if !win.GetClientRect(win.HWND(h), &r) {
		return model.Rect{}, fmt.Errorf("GetClientRect failed for %v", h)
	}
	return fromRECT(r), nil
}

func (s *Shell) SetParent(child, parent platform.Handle) (platform.Handle, error) {
	prev := win.SetParent(win.HWND(child), win.HWND(parent))
	if prev == 0 {
		return 0, fmt.Errorf("SetParent(%v, %v) failed", child, parent)
	}
	return platform.Handle(prev), nil
}

func (s *Shell) SetWindowPos(h platform.Handle, p model.Placement, flags platform.PosFlag) error {
	if !win.SetWindowPos(win.HWND(h), 0, p.X, p.Y, p.Width, p.Height, uint32(flags)) {
		return fmt.Errorf("SetWindowPos failed for %v", h)
	}
	return nil
}

func fromRECT(r win.RECT) model.Rect {
	return model.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
