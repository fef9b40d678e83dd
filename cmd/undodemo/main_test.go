package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Scenario(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr = %s", code, stderr.String())
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "Current data:\n  amplitude: 47\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "After two undos:\n  amplitude: 30\n") {
		t.Errorf("missing baseline after two undos:\n%s", out)
	}
}

func TestRun_ConfigAndDebugLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "undolog.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  amplitude: 8\n  frequency: 2\n  cycles: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--config", path, "--log-level", "debug"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr = %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "After two undos:\n  amplitude: 8\n") {
		t.Errorf("baseline should come from config:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "history changed") {
		t.Errorf("expected debug trace on stderr:\n%s", stderr.String())
	}
}

func TestRun_Script(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.lua")
	code := "commit()\nset(1, 2, 3)\ncommit()\nundo()\nprint(state().amplitude)\n"
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if rc := run([]string{"script", path}, &stdout, &stderr); rc != 0 {
		t.Fatalf("run() = %d, stderr = %s", rc, stderr.String())
	}
	if stdout.String() != "30\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "30\n")
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"--log-level", "loud"}},
		{"unknown command", []string{"bogus"}},
		{"script without file", []string{"script"}},
		{"missing script", []string{"script", "/nonexistent/demo.lua"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("run(%v) = %d, want 1", tt.args, code)
			}
			if !strings.Contains(stderr.String(), "Error:") {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}
