//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package main

import "os"

func isTerminal(_ *os.File) bool {
	return false
}
