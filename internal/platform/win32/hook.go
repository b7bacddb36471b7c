//go:build windows

package win32

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// Callbacks created with windows.NewCallback are never freed, so all hooks
// share one trampoline and dispatch on the hook handle.
var (
	callbackOnce sync.Once
	callbackPtr  uintptr

	sinksMu sync.RWMutex
	sinks   = map[uintptr]func(model.WinEvent){}
)

func winEventCallback() uintptr {
	callbackOnce.Do(func() {
		callbackPtr = windows.NewCallback(func(hook, event, hwnd, idObject, idChild, thread, time uintptr) uintptr {
			sinksMu.RLock()
			sink := sinks[hook]
			sinksMu.RUnlock()
			if sink != nil {
				sink(model.WinEvent{
					Hook:     hook,
					Kind:     model.EventKind(event),
					Hwnd:     hwnd,
					ObjectID: int32(idObject),
					ChildID:  int32(idChild),
					ThreadID: uint32(thread),
					Time:     uint32(time),
				})
			}
			return 0
		})
	})
	return callbackPtr
}

// eventHook owns a locked OS thread that installed the hook and pumps its
// messages. UnhookWinEvent must run on that same thread.
type eventHook struct {
	tid    uint32
	handle uintptr
	done   chan struct{}
	once   sync.Once
	err    error
}

func (s *Shell) HookEvents(target platform.HookTarget, sink func(model.WinEvent)) (platform.EventHook, error) {
	h := &eventHook{done: make(chan struct{})}
	ready := make(chan error, 1)
	go h.run(target, sink, ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return h, nil
}

func (h *eventHook) run(target platform.HookTarget, sink func(model.WinEvent), ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.done)

	h.tid = windows.GetCurrentThreadId()
	ret, _, callErr := procSetWinEventHook.Call(
		uintptr(target.Min),
		uintptr(target.Max),
		0,
		winEventCallback(),
		uintptr(target.PID),
		uintptr(target.TID),
		winEventOutOfContext,
	)
	if ret == 0 {
		ready <- fmt.Errorf("SetWinEventHook(pid=%d, tid=%d): %v", target.PID, target.TID, callErr)
		return
	}
	h.handle = ret

	sinksMu.Lock()
	sinks[ret] = sink
	sinksMu.Unlock()

	// Create the thread's message queue before Close can post to it.
	var msg win.MSG
	win.PeekMessage(&msg, 0, 0, 0, win.PM_NOREMOVE)
	ready <- nil

	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}

	sinksMu.Lock()
	delete(sinks, ret)
	sinksMu.Unlock()
	if r, _, err := procUnhookWinEvent.Call(ret); r == 0 {
		h.err = fmt.Errorf("UnhookWinEvent: %v", err)
	}
}

func (h *eventHook) Close() error {
	h.once.Do(func() {
		r, _, err := procPostThreadMessageW.Call(uintptr(h.tid), wmQuit, 0, 0)
		if r == 0 {
			h.err = fmt.Errorf("PostThreadMessage(WM_QUIT): %v", err)
			return
		}
		<-h.done
	})
	return h.err
}
