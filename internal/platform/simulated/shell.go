// Package simulated provides an in-memory taskbar that implements
// platform.Shell. It backs the --simulate CLI mode and the tests of the
// taskbar package.
package simulated

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// Classic taskbar class names.
const (
	ClassTray   = "Shell_TrayWnd"
	ClassRebar  = "ReBarWindow32"
	ClassNotify = "TrayNotifyWnd"

	explorerPID = 4120
	explorerTID = 4124
	firstHandle = 0x10010
)

// Config describes the simulated screen and taskbar.
type Config struct {
	ScreenWidth  int32
	ScreenHeight int32
	Thickness    int32
	StartWidth   int32 // space left of the toolbar (start button)
	TrayWidth    int32 // width of the notification area

	// Class names; empty means the classic names.
	TrayClass    string
	ToolbarClass string
	NotifyClass  string
}

// DefaultConfig is a 1920x1080 screen with a 40px bottom taskbar.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Thickness:    40,
		StartWidth:   48,
		TrayWidth:    120,
	}
}

// PosCall records one SetWindowPos call.
type PosCall struct {
	Handle    platform.Handle
	Placement model.Placement
	Flags     platform.PosFlag
}

type window struct {
	class   string
	title   string
	parent  platform.Handle
	tid     uint32
	pid     uint32
	desktop model.Rect
	visible bool
}

type hook struct {
	target platform.HookTarget
	sink   func(model.WinEvent)
}

// Shell is a simulated window manager holding one taskbar.
type Shell struct {
	mu       sync.Mutex
	cfg      Config
	next     platform.Handle
	windows  map[platform.Handle]*window
	hooks    map[uintptr]*hook
	nextHook uintptr
	calls    []PosCall
	failPos  map[platform.Handle]error

	tray, toolbar, notify platform.Handle
	hookErr               error
	unhookErr             error
}

// New builds a simulated shell with the taskbar described by cfg.
func New(cfg Config) *Shell {
	if cfg.TrayClass == "" {
		cfg.TrayClass = ClassTray
	}
	if cfg.ToolbarClass == "" {
		cfg.ToolbarClass = ClassRebar
	}
	if cfg.NotifyClass == "" {
		cfg.NotifyClass = ClassNotify
	}
	s := &Shell{
		cfg:     cfg,
		next:    firstHandle,
		windows: make(map[platform.Handle]*window),
		hooks:   make(map[uintptr]*hook),
		failPos: make(map[platform.Handle]error),
	}
	s.tray = s.add(&window{class: cfg.TrayClass, tid: explorerTID, pid: explorerPID, visible: true})
	s.notify = s.add(&window{class: cfg.NotifyClass, parent: s.tray, tid: explorerTID, pid: explorerPID, visible: true})
	s.toolbar = s.add(&window{class: cfg.ToolbarClass, parent: s.tray, tid: explorerTID, pid: explorerPID, visible: true})
	s.layoutTaskbar()
	return s
}

func (s *Shell) add(w *window) platform.Handle {
	h := s.next
	s.next += 0x10
	s.windows[h] = w
	return h
}

// layoutTaskbar recomputes the taskbar rects from cfg. Callers hold mu
// (or own s exclusively).
func (s *Shell) layoutTaskbar() {
	c := s.cfg
	set := func(h platform.Handle, r model.Rect) {
		if w, ok := s.windows[h]; ok {
			w.desktop = r
		}
	}
	top := c.ScreenHeight - c.Thickness
	notifyLeft := c.ScreenWidth - c.TrayWidth
	set(s.tray, model.Rect{Left: 0, Top: top, Right: c.ScreenWidth, Bottom: c.ScreenHeight})
	set(s.notify, model.Rect{Left: notifyLeft, Top: top, Right: c.ScreenWidth, Bottom: c.ScreenHeight})
	set(s.toolbar, model.Rect{Left: c.StartWidth, Top: top, Right: notifyLeft, Bottom: c.ScreenHeight})
}

// Taskbar returns the icon area, toolbar and notify area handles.
func (s *Shell) Taskbar() (tray, toolbar, notify platform.Handle) {
	return s.tray, s.toolbar, s.notify
}

// AddWindow creates a top-level window owned by the given process.
func (s *Shell) AddWindow(class, title string, pid uint32, r model.Rect) platform.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(&window{class: class, title: title, tid: pid + 4, pid: pid, desktop: r})
}

func (s *Shell) FindWindow(parent platform.Handle, class string) (platform.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found platform.Handle
	for h, w := range s.windows {
		if w.parent == parent && w.class == class && (found == 0 || h < found) {
			found = h
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("%w: class %q under %v", platform.ErrWindowNotFound, class, parent)
	}
	return found, nil
}

func (s *Shell) FindWindowByTitle(title string) (platform.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found platform.Handle
	for h, w := range s.windows {
		if w.parent == 0 && w.title == title && (found == 0 || h < found) {
			found = h
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("%w: title %q", platform.ErrWindowNotFound, title)
	}
	return found, nil
}

func (s *Shell) lookup(h platform.Handle) (*window, error) {
	w, ok := s.windows[h]
	if !ok {
		return nil, fmt.Errorf("invalid window handle %v", h)
	}
	return w, nil
}

func (s *Shell) WindowThreadProcessID(h platform.Handle) (uint32, uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.lookup(h)
	if err != nil {
		return 0, 0, err
	}
	return w.tid, w.pid, nil
}

func (s *Shell) WindowRect(h platform.Handle) (model.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.lookup(h)
	if err != nil {
		return model.Rect{}, err
	}
	return w.desktop, nil
}

func (s *Shell) ClientRect(h platform.Handle) (model.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.lookup(h)
	if err != nil {
		return model.Rect{}, err
	}
	return model.Rect{Right: w.desktop.Width(), Bottom: w.desktop.Height()}, nil
}

func (s *Shell) SetParent(child, parent platform.Handle) (platform.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.lookup(child)
	if err != nil {
		return 0, err
	}
	if parent != 0 {
		if _, err := s.lookup(parent); err != nil {
			return 0, err
		}
	}
	prev := w.parent
	w.parent = parent
	return prev, nil
}

// SetWindowPos places h relative to its parent's desktop origin, the way
// child windows are positioned in their parent's client area.
func (s *Shell) SetWindowPos(h platform.Handle, p model.Placement, flags platform.PosFlag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, PosCall{Handle: h, Placement: p, Flags: flags})
	if err := s.failPos[h]; err != nil {
		return err
	}
	w, err := s.lookup(h)
	if err != nil {
		return err
	}
	var originX, originY int32
	if w.parent != 0 {
		if pw, ok := s.windows[w.parent]; ok {
			originX, originY = pw.desktop.Left, pw.desktop.Top
		}
	}
	r := w.desktop
	if !flags.Has(platform.PosNoMove) {
		r.Left, r.Top = originX+p.X, originY+p.Y
	}
	if !flags.Has(platform.PosNoSize) {
		r.Right, r.Bottom = r.Left+p.Width, r.Top+p.Height
	} else {
		r.Right, r.Bottom = r.Left+w.desktop.Width(), r.Top+w.desktop.Height()
	}
	w.desktop = r
	if flags.Has(platform.PosShowWindow) {
		w.visible = true
	}
	if flags.Has(platform.PosHideWindow) {
		w.visible = false
	}
	return nil
}

// ErrHooksDisabled is returned by HookEvents after FailHooks.
var ErrHooksDisabled = errors.New("simulated: event hooks disabled")

// FailHooks makes subsequent HookEvents calls fail with err.
func (s *Shell) FailHooks(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hookErr = err
}

func (s *Shell) HookEvents(target platform.HookTarget, sink func(model.WinEvent)) (platform.EventHook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hookErr != nil {
		return nil, s.hookErr
	}
	s.nextHook++
	id := s.nextHook
	s.hooks[id] = &hook{target: target, sink: sink}
	return &eventHook{shell: s, id: id}, nil
}

type eventHook struct {
	shell *Shell
	id    uintptr
	once  sync.Once
}

func (h *eventHook) Close() error {
	var err error
	h.once.Do(func() {
		h.shell.mu.Lock()
		delete(h.shell.hooks, h.id)
		err = h.shell.unhookErr
		h.shell.mu.Unlock()
	})
	return err
}

// FailUnhook makes subsequent hook releases report err. The hook is still
// removed.
func (s *Shell) FailUnhook(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unhookErr = err
}

// RemoveWindow destroys h, as when explorer restarts. Children keep their
// stale parent handle.
func (s *Shell) RemoveWindow(h platform.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, h)
}

// ActiveHooks returns the number of installed hooks.
func (s *Shell) ActiveHooks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hooks)
}

// Emit delivers an event raised on the toolbar's thread to every matching hook.
func (s *Shell) Emit(kind model.EventKind) {
	s.mu.Lock()
	var targets []*hook
	var ids []uintptr
	for id, hk := range s.hooks {
		t := hk.target
		if kind < t.Min || kind > t.Max {
			continue
		}
		if t.TID != 0 && t.TID != explorerTID {
			continue
		}
		if t.PID != 0 && t.PID != explorerPID {
			continue
		}
		targets = append(targets, hk)
		ids = append(ids, id)
	}
	toolbar := s.toolbar
	s.mu.Unlock()

	for i, hk := range targets {
		hk.sink(model.WinEvent{
			Hook:     ids[i],
			Kind:     kind,
			Hwnd:     uintptr(toolbar),
			ThreadID: explorerTID,
		})
	}
}

// Resize changes the taskbar thickness and tray width the way a user drag
// or a new tray icon would, then emits the move-end/reorder pair.
func (s *Shell) Resize(thickness, trayWidth int32) {
	s.mu.Lock()
	s.cfg.Thickness = thickness
	s.cfg.TrayWidth = trayWidth
	s.layoutTaskbar()
	s.mu.Unlock()

	s.Emit(model.EventSystemMoveSizeEnd)
	s.Emit(model.EventObjectReorder)
}

// Calls returns the SetWindowPos calls made so far.
func (s *Shell) Calls() []PosCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PosCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// FailPositions makes SetWindowPos on h fail with err. A nil err clears it.
func (s *Shell) FailPositions(h platform.Handle, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failPos, h)
		return
	}
	s.failPos[h] = err
}

// Parent returns the current parent of h.
func (s *Shell) Parent(h platform.Handle) platform.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[h]; ok {
		return w.parent
	}
	return 0
}

// Visible reports whether h has been shown.
func (s *Shell) Visible(h platform.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[h]; ok {
		return w.visible
	}
	return false
}
