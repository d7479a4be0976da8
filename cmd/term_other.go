//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package cmd

import "os"

func terminalWidth(_ *os.File) int { return 0 }
