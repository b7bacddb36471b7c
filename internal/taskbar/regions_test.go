package taskbar

import (
	"errors"
	"strings"
	"testing"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
	"github.com/mj1618/taskbar-embed/internal/platform/simulated"
)

func TestLocate_Classic(t *testing.T) {
	sh := simulated.New(simulated.DefaultConfig())
	r, err := Locate(sh, config.Default().Profiles)
	if err != nil {
		t.Fatal(err)
	}
	tray, toolbar, notify := sh.Taskbar()
	if r.AppIcon.Handle != tray || r.Toolbar.Handle != toolbar || r.Notify.Handle != notify {
		t.Errorf("handles: got %v/%v/%v, want %v/%v/%v",
			r.AppIcon.Handle, r.Toolbar.Handle, r.Notify.Handle, tray, toolbar, notify)
	}
	if r.Profile != "classic" {
		t.Errorf("profile: got %q, want classic", r.Profile)
	}
	if r.Toolbar.ThreadID == 0 || r.Toolbar.ProcessID == 0 {
		t.Error("toolbar thread/process ids should be resolved")
	}
}

func TestLocate_FallsBackToLaterProfile(t *testing.T) {
	cfg := simulated.DefaultConfig()
	cfg.ToolbarClass = "Windows.UI.Composition.DesktopWindowContentBridge"
	sh := simulated.New(cfg)

	r, err := Locate(sh, config.Default().Profiles)
	if err != nil {
		t.Fatal(err)
	}
	if r.Profile != "win11" {
		t.Errorf("profile: got %q, want win11", r.Profile)
	}
}

func TestLocate_NoMatch(t *testing.T) {
	cfg := simulated.DefaultConfig()
	cfg.NotifyClass = "SomethingElse"
	sh := simulated.New(cfg)

	_, err := Locate(sh, config.Default().Profiles)
	if !errors.Is(err, ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
	if !errors.Is(err, platform.ErrWindowNotFound) {
		t.Errorf("expected wrapped ErrWindowNotFound, got %v", err)
	}
	var re *RegionError
	if !errors.As(err, &re) || re.Class != "TrayNotifyWnd" {
		t.Errorf("expected RegionError for TrayNotifyWnd, got %v", err)
	}
	if !strings.Contains(err.Error(), "win11") {
		t.Errorf("error should mention every tried profile: %v", err)
	}
}

func TestLocate_NoProfiles(t *testing.T) {
	_, err := Locate(simulated.New(simulated.DefaultConfig()), nil)
	if !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("expected ErrRegionNotFound, got %v", err)
	}
}

func TestRegions_Refresh(t *testing.T) {
	_, r := newTestTaskbar(t)
	if got, want := r.AppIcon.Desktop, (model.Rect{Left: 0, Top: 1040, Right: 1920, Bottom: 1080}); got != want {
		t.Errorf("app icon desktop: got %v, want %v", got, want)
	}
	if r.Thickness() != 40 {
		t.Errorf("thickness: got %d, want 40", r.Thickness())
	}
	if r.Gap() != 120 {
		t.Errorf("gap: got %d, want 120", r.Gap())
	}
	if r.Notify.Desktop.Left != 1800 {
		t.Errorf("notify left: got %d, want 1800", r.Notify.Desktop.Left)
	}
}

func TestRegions_RefreshIdempotent(t *testing.T) {
	sh, r := newTestTaskbar(t)
	first := *r
	if err := r.Refresh(sh); err != nil {
		t.Fatal(err)
	}
	if *r != first {
		t.Errorf("second refresh changed regions:\n%+v\n%+v", first, *r)
	}
}

func TestRegions_RefreshSeesResize(t *testing.T) {
	sh, r := newTestTaskbar(t)
	sh.Resize(48, 200)
	if err := r.Refresh(sh); err != nil {
		t.Fatal(err)
	}
	if r.Thickness() != 48 {
		t.Errorf("thickness: got %d, want 48", r.Thickness())
	}
	if r.Notify.Desktop.Left != 1720 {
		t.Errorf("notify left: got %d, want 1720", r.Notify.Desktop.Left)
	}
}

func TestRegions_RefreshInvalidHandle(t *testing.T) {
	sh, r := newTestTaskbar(t)
	r.Notify.Handle = 0xDEAD
	if err := r.Refresh(sh); err == nil {
		t.Error("expected error for invalid handle")
	}
}
