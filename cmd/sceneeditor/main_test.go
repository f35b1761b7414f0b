package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAbsPathUsesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	got := absPath("config/editor.toml")
	want := filepath.Join(wd, "config", "editor.toml")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	abs := filepath.Join(wd, "scripts", "startup.lua")
	if got := absPath(abs); got != abs {
		t.Errorf("Expected absolute path unchanged, got %s", got)
	}
	if got := absPath(""); got != "" {
		t.Errorf("Expected empty path unchanged, got %s", got)
	}
}
