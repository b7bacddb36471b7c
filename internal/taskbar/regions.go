package taskbar

import (
	"errors"
	"fmt"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// Region is one of the taskbar's internal windows. Handle and ids are fixed
// at Locate time; only the rects change on Refresh.
type Region struct {
	Class     string          `yaml:"class"      json:"class"`
	Handle    platform.Handle `yaml:"handle"     json:"handle"`
	ThreadID  uint32          `yaml:"thread_id"  json:"thread_id"`
	ProcessID uint32          `yaml:"process_id" json:"process_id"`
	Client    model.Rect      `yaml:"client"     json:"client"`
	Desktop   model.Rect      `yaml:"desktop"    json:"desktop"`
}

// Regions holds the three taskbar windows. Toolbar and Notify are children
// of AppIcon.
type Regions struct {
	Profile string `yaml:"profile" json:"profile"`
	AppIcon Region `yaml:"app_icon" json:"app_icon"`
	Toolbar Region `yaml:"toolbar"  json:"toolbar"`
	Notify  Region `yaml:"notify"   json:"notify"`
}

// Locate walks the shell window hierarchy with each profile in turn and
// returns the first full match. Rects are not read; call Refresh.
func Locate(shell platform.Shell, profiles []config.ClassProfile) (*Regions, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no class profiles configured", ErrRegionNotFound)
	}
	var errs []error
	for _, p := range profiles {
		r, err := locateProfile(shell, p)
		if err == nil {
			return r, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func locateProfile(shell platform.Shell, p config.ClassProfile) (*Regions, error) {
	icon, err := shell.FindWindow(0, p.Shell)
	if err != nil {
		return nil, &RegionError{Profile: p.Name, Class: p.Shell, Err: err}
	}
	toolbar, err := shell.FindWindow(icon, p.Toolbar)
	if err != nil {
		return nil, &RegionError{Profile: p.Name, Class: p.Toolbar, Err: err}
	}
	notify, err := shell.FindWindow(icon, p.Notify)
	if err != nil {
		return nil, &RegionError{Profile: p.Name, Class: p.Notify, Err: err}
	}

	r := &Regions{
		Profile: p.Name,
		AppIcon: Region{Class: p.Shell, Handle: icon},
		Toolbar: Region{Class: p.Toolbar, Handle: toolbar},
		Notify:  Region{Class: p.Notify, Handle: notify},
	}
	for _, reg := range r.all() {
		tid, pid, err := shell.WindowThreadProcessID(reg.Handle)
		if err != nil {
			return nil, &RegionError{Profile: p.Name, Class: reg.Class, Err: err}
		}
		reg.ThreadID, reg.ProcessID = tid, pid
	}
	return r, nil
}

func (r *Regions) all() []*Region {
	return []*Region{&r.AppIcon, &r.Toolbar, &r.Notify}
}

// Refresh re-reads desktop and client rects of all three regions. Cached
// rects are stale as soon as the taskbar moves.
func (r *Regions) Refresh(shell platform.Shell) error {
	for _, reg := range r.all() {
		desktop, err := shell.WindowRect(reg.Handle)
		if err != nil {
			return fmt.Errorf("refresh %s: %w", reg.Class, err)
		}
		client, err := shell.ClientRect(reg.Handle)
		if err != nil {
			return fmt.Errorf("refresh %s: %w", reg.Class, err)
		}
		reg.Desktop, reg.Client = desktop, client
	}
	return nil
}

// Thickness is the taskbar's own height, read from the icon area's client rect.
func (r *Regions) Thickness() int32 {
	return r.AppIcon.Client.Bottom
}

// Gap is the horizontal space between the right of the icon area and the
// left of the notification area, as used by the fill-gap sizing.
func (r *Regions) Gap() int32 {
	return r.AppIcon.Desktop.Right - r.Notify.Desktop.Left
}
