package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Raw escape sequences for emergency terminal restore
// Kept here so the panic path has no dependency on screen state
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1006l")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset attempts to restore the terminal to a sane state
// Call from panic recovery when a normal screen.Fini cannot run
func EmergencyReset(f *os.File) {
	f.Write(csiMouseOff)
	f.Write(csiCursorShow)
	f.Write(csiAltScreenExit)
	f.Write(csiSGR0)
	f.Sync()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	EmergencyReset(os.Stdout)

	// Print error and stack trace to stderr
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
