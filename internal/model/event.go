package model

import (
	"fmt"
	"time"
)

// EventKind is a WinEvent constant (EVENT_SYSTEM_* / EVENT_OBJECT_*).
type EventKind uint32

const (
	EventMin EventKind = 0x00000001
	EventMax EventKind = 0x7FFFFFFF

	EventSystemSound          EventKind = 0x0001
	EventSystemAlert          EventKind = 0x0002
	EventSystemForeground     EventKind = 0x0003
	EventSystemMenuStart      EventKind = 0x0004
	EventSystemMenuEnd        EventKind = 0x0005
	EventSystemMenuPopupStart EventKind = 0x0006
	EventSystemMenuPopupEnd   EventKind = 0x0007
	EventSystemCaptureStart   EventKind = 0x0008
	EventSystemCaptureEnd     EventKind = 0x0009
	EventSystemMoveSizeStart  EventKind = 0x000A
	EventSystemMoveSizeEnd    EventKind = 0x000B
	EventSystemMinimizeStart  EventKind = 0x0016
	EventSystemMinimizeEnd    EventKind = 0x0017
	EventSystemDesktopSwitch  EventKind = 0x0020

	EventObjectCreate         EventKind = 0x8000
	EventObjectDestroy        EventKind = 0x8001
	EventObjectShow           EventKind = 0x8002
	EventObjectHide           EventKind = 0x8003
	EventObjectReorder        EventKind = 0x8004
	EventObjectFocus          EventKind = 0x8005
	EventObjectStateChange    EventKind = 0x800A
	EventObjectLocationChange EventKind = 0x800B
	EventObjectNameChange     EventKind = 0x800C
	EventObjectParentChange   EventKind = 0x800F
	EventObjectCloaked        EventKind = 0x8017
	EventObjectUncloaked      EventKind = 0x8018
)

var eventNames = map[EventKind]string{
	EventSystemSound:          "system.sound",
	EventSystemAlert:          "system.alert",
	EventSystemForeground:     "system.foreground",
	EventSystemMenuStart:      "system.menu_start",
	EventSystemMenuEnd:        "system.menu_end",
	EventSystemMenuPopupStart: "system.menu_popup_start",
	EventSystemMenuPopupEnd:   "system.menu_popup_end",
	EventSystemCaptureStart:   "system.capture_start",
	EventSystemCaptureEnd:     "system.capture_end",
	EventSystemMoveSizeStart:  "system.move_size_start",
	EventSystemMoveSizeEnd:    "system.move_size_end",
	EventSystemMinimizeStart:  "system.minimize_start",
	EventSystemMinimizeEnd:    "system.minimize_end",
	EventSystemDesktopSwitch:  "system.desktop_switch",
	EventObjectCreate:         "object.create",
	EventObjectDestroy:        "object.destroy",
	EventObjectShow:           "object.show",
	EventObjectHide:           "object.hide",
	EventObjectReorder:        "object.reorder",
	EventObjectFocus:          "object.focus",
	EventObjectStateChange:    "object.state_change",
	EventObjectLocationChange: "object.location_change",
	EventObjectNameChange:     "object.name_change",
	EventObjectParentChange:   "object.parent_change",
	EventObjectCloaked:        "object.cloaked",
	EventObjectUncloaked:      "object.uncloaked",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(0x%04X)", uint32(k))
}

// WinEvent is one notification delivered by the accessibility event hook.
type WinEvent struct {
	Hook     uintptr   `json:"hook"`
	Kind     EventKind `json:"kind"`
	Hwnd     uintptr   `json:"hwnd,omitempty"`
	ObjectID int32     `json:"object"`
	ChildID  int32     `json:"child"`
	ThreadID uint32    `json:"thread"`
	Time     uint32    `json:"time"`
}

// Change is the coalesced "taskbar changed" notification.
type Change struct {
	Seq  uint64    `yaml:"seq"  json:"seq"`
	At   time.Time `yaml:"at"   json:"at"`
	Size Size      `yaml:"size" json:"size"`
}
