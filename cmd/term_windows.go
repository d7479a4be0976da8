//go:build windows

package cmd

import (
	"os"

	"golang.org/x/sys/windows"
)

// terminalWidth returns the visible width of the console attached to f, or 0
// when f is redirected.
func terminalWidth(f *os.File) int {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return 0
	}
	return int(info.Window.Right-info.Window.Left) + 1
}
