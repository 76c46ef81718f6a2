package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "scrollway.log"
	maxLogSize  = 10 << 20
)

// setupLogging points the standard logger at logs/scrollway.log when debug is set
// and discards output otherwise, since the terminal UI owns stdout and stderr
// An oversized log is renamed with a timestamp before a fresh one is opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("scrollway-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging started")
	return f
}
