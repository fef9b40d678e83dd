package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/undolog/internal/undo"
	"github.com/dshills/undolog/internal/wave"
)

func newTestRunner(t *testing.T) (*Runner, *wave.App, *strings.Builder) {
	t.Helper()
	app := wave.NewApp(wave.Params{Amplitude: 30, Frequency: 20, Cycles: 5}, undo.New())
	var out strings.Builder
	r := NewRunner(app, &out)
	t.Cleanup(r.Close)
	return r, app, &out
}

func TestRunner_Scenario(t *testing.T) {
	r, app, out := newTestRunner(t)

	err := r.DoString(context.Background(), `
commit("baseline")
set(12.5, 10, 7)
commit("second")
set(47, 22, 3)
commit("third")

assert(undo())
local s = state()
print(s.amplitude, s.frequency, s.cycles, s.samples)
assert(undo())
assert(not undo())
assert(redo())
assert(has_undo() and has_redo())
`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if got := app.Current().Params; got != (wave.Params{Amplitude: 12.5, Frequency: 10, Cycles: 7}) {
		t.Errorf("live = %v, want (12.5, 10, 7)", got)
	}
	if got := out.String(); got != "12.5\t10\t7\t350\n" {
		t.Errorf("print output = %q", got)
	}
}

func TestRunner_History(t *testing.T) {
	r, _, out := newTestRunner(t)

	err := r.DoString(context.Background(), `
commit("a")
set(1, 1, 1)
commit("b")
undo()
for i, h in ipairs(history()) do
  print(i, h.description, h.items, h.current)
end
`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	want := "1\ta\t1\ttrue\n2\tb\t1\tfalse\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunner_ShowAndClear(t *testing.T) {
	r, app, out := newTestRunner(t)

	err := r.DoString(context.Background(), `
commit()
set(2, 3, 4)
commit()
clear()
assert(not has_undo())
show()
`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if app.Log().Len() != 0 {
		t.Errorf("Len() = %d, want 0", app.Log().Len())
	}
	if !strings.Contains(out.String(), "amplitude: 2\n") {
		t.Errorf("show output = %q", out.String())
	}
}

func TestRunner_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"missing args", `set(1)`},
		{"bad type", `set("a", 1, 1)`},
		{"negative cycles", `set(1, 1, -1)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRunner(t)
			if err := r.DoString(context.Background(), tt.code); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunner_Sandbox(t *testing.T) {
	r, _, _ := newTestRunner(t)

	for _, code := range []string{
		`os.exit(1)`,
		`io.write("x")`,
		`dofile("x.lua")`,
		`require("x")`,
	} {
		if err := r.DoString(context.Background(), code); err == nil {
			t.Errorf("%s should fail in the sandbox", code)
		}
	}
}

func TestRunner_ContextCancel(t *testing.T) {
	r, _, _ := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.DoString(ctx, `while true do end`); err == nil {
		t.Error("expected cancelled script to fail")
	}
}

func TestRunner_DoFile(t *testing.T) {
	r, app, _ := newTestRunner(t)

	path := filepath.Join(t.TempDir(), "edit.lua")
	if err := os.WriteFile(path, []byte("commit()\nset(5, 6, 7)\ncommit()\nundo()\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := r.DoFile(context.Background(), path); err != nil {
		t.Fatalf("DoFile() error = %v", err)
	}
	if app.Current().Amplitude != 30 {
		t.Errorf("amplitude = %v, want 30", app.Current().Amplitude)
	}

	err := r.DoFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	if err == nil || !strings.Contains(err.Error(), "missing.lua") {
		t.Errorf("DoFile(missing) error = %v", err)
	}
}

func TestRunner_Closed(t *testing.T) {
	r, _, _ := newTestRunner(t)
	r.Close()

	if err := r.DoString(context.Background(), `commit()`); !errors.Is(err, ErrClosed) {
		t.Errorf("error = %v, want ErrClosed", err)
	}
}
