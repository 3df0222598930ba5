package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashReset atomic.Pointer[func()]

// SetCrashReset registers the terminal restore hook run before a crash report
func SetCrashReset(fn func()) {
	crashReset.Store(&fn)
}

// HandleCrash restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashReset.Load(); fn != nil && *fn != nil {
		(*fn)()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use instead of the 'go' keyword so the terminal is restored on crash
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
