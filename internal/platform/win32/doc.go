// Package win32 provides the Windows shell backend using user32 window
// management calls and WinEvent accessibility hooks. On other systems the
// package is empty and the CLI needs --simulate.
package win32
