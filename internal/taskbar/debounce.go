package taskbar

import "github.com/mj1618/taskbar-embed/internal/model"

// Debouncer coalesces the loosely ordered pair of events the shell raises
// when the taskbar layout changes. A reorder counts only after a move-end;
// any other event is ignored.
type Debouncer struct {
	moved      bool
	rearranged bool
}

// Feed consumes one event and reports whether the pair is complete. On
// true the state is reset.
func (d *Debouncer) Feed(kind model.EventKind) bool {
	switch kind {
	case model.EventSystemMoveSizeEnd:
		d.moved = true
	case model.EventObjectReorder:
		if d.moved {
			d.rearranged = true
		}
	}
	if !d.moved || !d.rearranged {
		return false
	}
	d.Reset()
	return true
}

// Pending reports whether a move-end has been seen without its reorder.
func (d *Debouncer) Pending() bool { return d.moved }

// Reset returns to the idle state.
func (d *Debouncer) Reset() {
	d.moved = false
	d.rearranged = false
}
