//go:build windows

package win32

import (
	"fmt"

	"github.com/mj1618/taskbar-embed/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if err := procSetWinEventHook.Find(); err != nil {
			return nil, fmt.Errorf("user32 SetWinEventHook unavailable: %w", err)
		}
		return &platform.Provider{Shell: NewShell()}, nil
	}
}
