package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()
	crashExit    = os.Exit
)

// SetCrashRestorer registers the hook that returns the terminal to a sane state before a crash report
func SetCrashRestorer(fn func()) {
	crashMu.Lock()
	crashRestore = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashMu.Unlock()
	if restore != nil {
		restore()
	}

	fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\nStack Trace:\n%s\n", r, debug.Stack())
	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash off the main goroutine still restores the terminal
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
