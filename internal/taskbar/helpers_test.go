package taskbar

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/platform/simulated"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestTaskbar returns a default simulated taskbar (1920x1080, 40px thick,
// tray from x=1800) with refreshed regions.
func newTestTaskbar(t *testing.T) (*simulated.Shell, *Regions) {
	t.Helper()
	sh := simulated.New(simulated.DefaultConfig())
	r, err := Locate(sh, config.Default().Profiles)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if err := r.Refresh(sh); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return sh, r
}
