//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procFindWindowExW      = user32.NewProc("FindWindowExW")
	procSetWinEventHook    = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent     = user32.NewProc("UnhookWinEvent")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

const (
	winEventOutOfContext = 0x0000
	wmQuit               = 0x0012
)
