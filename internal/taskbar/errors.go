package taskbar

import (
	"errors"
	"fmt"
)

var (
	// ErrRegionNotFound is returned when the taskbar window hierarchy does not
	// match any known class profile (unsupported shell or OS version).
	ErrRegionNotFound = errors.New("taskbar region not found")

	// ErrHookInstallFailed is returned when the WinEvent hook cannot be installed.
	ErrHookInstallFailed = errors.New("event hook install failed")

	// ErrInvalidGeometryRequest is returned for zero or negative dimensions
	// where a positive size is required.
	ErrInvalidGeometryRequest = errors.New("invalid geometry request")

	// ErrClosed is returned by Control methods after Close.
	ErrClosed = errors.New("taskbar control is closed")
)

// RegionError reports which class of which profile failed to resolve.
type RegionError struct {
	Profile string
	Class   string
	Err     error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("%s: profile %q class %q: %v", ErrRegionNotFound, e.Profile, e.Class, e.Err)
}

// Unwrap returns the underlying lookup error.
func (e *RegionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRegionNotFound) match.
func (e *RegionError) Is(target error) bool { return target == ErrRegionNotFound }
