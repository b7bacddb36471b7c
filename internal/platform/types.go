package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/taskbar-embed/internal/model"
)

// PosFlag is a set of SetWindowPos SWP_* flags.
type PosFlag uint32

const (
	PosNoSize         PosFlag = 0x0001
	PosNoMove         PosFlag = 0x0002
	PosNoZOrder       PosFlag = 0x0004
	PosNoRedraw       PosFlag = 0x0008
	PosNoActivate     PosFlag = 0x0010
	PosFrameChanged   PosFlag = 0x0020
	PosShowWindow     PosFlag = 0x0040
	PosHideWindow     PosFlag = 0x0080
	PosNoCopyBits     PosFlag = 0x0100
	PosNoOwnerZOrder  PosFlag = 0x0200
	PosNoSendChanging PosFlag = 0x0400
	PosDeferErase     PosFlag = 0x2000
	PosAsyncWindowPos PosFlag = 0x4000
)

// Has reports whether all bits of f are set.
func (p PosFlag) Has(f PosFlag) bool { return p&f == f }

// HookTarget scopes an event hook to an event range and an owning
// process/thread. Zero PID or TID means "all".
type HookTarget struct {
	Min model.EventKind
	Max model.EventKind
	PID uint32
	TID uint32
}

// ParseHandle parses a window handle given as decimal or 0x-prefixed hex.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid window handle %q: must be non-zero", s)
	}
	return Handle(v), nil
}

// ParseSize parses a "WxH" string into a Size.
func ParseSize(s string) (model.Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return model.Size{}, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	var vals [2]int32
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return model.Size{}, fmt.Errorf("invalid size %q: %w", s, err)
		}
		vals[i] = int32(v)
	}
	return model.Size{Width: vals[0], Height: vals[1]}, nil
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}
