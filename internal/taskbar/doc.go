// Package taskbar embeds a window into the shell taskbar and keeps it sized
// as the taskbar changes.
//
// Regions are discovered once with Locate. A Control re-parents a window into
// the taskbar, listens for WinEvents on the toolbar's thread, debounces a
// move-end followed by a reorder into one Change, and repositions both the
// embedded window and the toolbar so they do not overlap. All geometry state
// of a Control lives on a single goroutine fed by the hook callback.
package taskbar
