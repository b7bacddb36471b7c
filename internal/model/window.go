package model

// Window describes a top-level window that can be embedded into the taskbar.
type Window struct {
	Handle uintptr `yaml:"handle" json:"handle"`
	Title  string  `yaml:"title,omitempty" json:"title,omitempty"`
	Class  string  `yaml:"class,omitempty" json:"class,omitempty"`
	PID    uint32  `yaml:"pid"    json:"pid"`
	Bounds [4]int  `yaml:"bounds" json:"bounds"`
}
