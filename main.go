package main

import (
	"github.com/mj1618/taskbar-embed/cmd"
	_ "github.com/mj1618/taskbar-embed/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
