// Package core holds process-wide crash recovery shared by every frontend
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores a display on crash; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen restored before a crash report; nil clears it
func SetCrashScreen(f Finalizer) {
	crashMu.Lock()
	crashScreen = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing anything
	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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
