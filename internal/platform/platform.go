package platform

import "github.com/mj1618/taskbar-embed/internal/model"

// Handle is an opaque OS window reference (HWND on Windows).
type Handle uintptr

// Shell is the window-manager surface needed to embed a control into the
// taskbar. Implementations are the Win32 backend and the simulated shell.
type Shell interface {
	// FindWindow returns the first child of parent with the given class name.
	// A zero parent searches top-level windows.
	FindWindow(parent Handle, class string) (Handle, error)

	// FindWindowByTitle returns the first top-level window with the given title.
	FindWindowByTitle(title string) (Handle, error)

	// WindowThreadProcessID returns the thread and process that own h.
	WindowThreadProcessID(h Handle) (tid, pid uint32, err error)

	// WindowRect returns the desktop-relative rect of h.
	WindowRect(h Handle) (model.Rect, error)

	// ClientRect returns the client-area rect of h, relative to its own origin.
	ClientRect(h Handle) (model.Rect, error)

	// SetParent re-parents child and returns the previous parent.
	SetParent(child, parent Handle) (Handle, error)

	// SetWindowPos moves and resizes h.
	SetWindowPos(h Handle, p model.Placement, flags PosFlag) error

	// HookEvents installs an accessibility event hook. sink is called from
	// the OS callback and must not block.
	HookEvents(target HookTarget, sink func(model.WinEvent)) (EventHook, error)
}

// EventHook is an installed event hook. Close releases it.
type EventHook interface {
	Close() error
}
