package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("log file opened without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log writer = %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file with debug")
	}
	defer f.Close()

	log.Println("phase intro -> foundation")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("log writes to a standard stream")
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("no rotated log found")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log is %d bytes", info.Size())
	}
}
