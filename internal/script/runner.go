package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/undolog/internal/logging"
	"github.com/dshills/undolog/internal/wave"
)

// Runner executes Lua scripts against a wave app.
//
// gopher-lua's LState is not goroutine-safe; a Runner must be used from a
// single goroutine.
type Runner struct {
	L      *lua.LState
	app    *wave.App
	out    io.Writer
	logger *logging.Logger
	closed bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for tracing script calls.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger.WithComponent("script")
		}
	}
}

// NewRunner creates a runner bound to app that writes output to out.
func NewRunner(app *wave.App, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		app:    app,
		out:    out,
		logger: logging.Null(),
	}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	openSafeLibraries(L)
	r.L = L
	r.install()

	return r
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package stay closed.
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
}

// Close releases the Lua state.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

// DoString executes a Lua chunk.
// Cancelling ctx aborts the script.
func (r *Runner) DoString(ctx context.Context, code string) error {
	return r.run(ctx, "<string>", func() error {
		return r.L.DoString(code)
	})
}

// DoFile executes a Lua file.
func (r *Runner) DoFile(ctx context.Context, path string) error {
	return r.run(ctx, path, func() error {
		return r.L.DoFile(path)
	})
}

// run executes fn with the context attached and panics recovered.
func (r *Runner) run(ctx context.Context, source string, fn func() error) (err error) {
	if r.closed {
		return ErrClosed
	}

	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("script %s: lua panic: %v", source, rec)
		}
	}()

	r.logger.Debug("running %s", source)
	if err := fn(); err != nil {
		return fmt.Errorf("script %s: %w", source, err)
	}
	return nil
}

func (r *Runner) install() {
	funcs := map[string]lua.LGFunction{
		"set":      r.luaSet,
		"commit":   r.luaCommit,
		"undo":     r.luaUndo,
		"redo":     r.luaRedo,
		"clear":    r.luaClear,
		"has_undo": r.luaHasUndo,
		"has_redo": r.luaHasRedo,
		"state":    r.luaState,
		"history":  r.luaHistory,
		"show":     r.luaShow,
		"print":    r.luaPrint,
	}
	for name, fn := range funcs {
		r.L.SetGlobal(name, r.L.NewFunction(fn))
	}
}

func (r *Runner) luaSet(L *lua.LState) int {
	p := wave.Params{
		Amplitude: float64(L.CheckNumber(1)),
		Frequency: float64(L.CheckNumber(2)),
		Cycles:    L.CheckInt(3),
	}
	if p.Cycles < 0 {
		L.ArgError(3, "cycles must not be negative")
		return 0
	}
	r.app.Set(p)
	return 0
}

func (r *Runner) luaCommit(L *lua.LState) int {
	r.app.Commit(L.OptString(1, ""))
	return 0
}

func (r *Runner) luaUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.app.Undo()))
	return 1
}

func (r *Runner) luaRedo(L *lua.LState) int {
	L.Push(lua.LBool(r.app.Redo()))
	return 1
}

func (r *Runner) luaClear(L *lua.LState) int {
	r.app.Log().Clear()
	return 0
}

func (r *Runner) luaHasUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.app.Log().HasUndo()))
	return 1
}

func (r *Runner) luaHasRedo(L *lua.LState) int {
	L.Push(lua.LBool(r.app.Log().HasRedo()))
	return 1
}

func (r *Runner) luaState(L *lua.LState) int {
	cur := r.app.Current()
	tbl := L.NewTable()
	tbl.RawSetString("amplitude", lua.LNumber(cur.Amplitude))
	tbl.RawSetString("frequency", lua.LNumber(cur.Frequency))
	tbl.RawSetString("cycles", lua.LNumber(cur.Cycles))
	tbl.RawSetString("samples", lua.LNumber(len(cur.Samples)))
	L.Push(tbl)
	return 1
}

func (r *Runner) luaHistory(L *lua.LState) int {
	list := L.NewTable()
	for _, info := range r.app.Log().Entries() {
		tbl := L.NewTable()
		tbl.RawSetString("id", lua.LString(info.ID))
		tbl.RawSetString("description", lua.LString(info.Description))
		tbl.RawSetString("items", lua.LNumber(info.Items))
		tbl.RawSetString("current", lua.LBool(info.Current))
		list.Append(tbl)
	}
	L.Push(list)
	return 1
}

func (r *Runner) luaShow(L *lua.LState) int {
	if err := r.app.Show(r.out); err != nil {
		L.RaiseError("show: %v", err)
	}
	return 0
}

func (r *Runner) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	if _, err := fmt.Fprintln(r.out, strings.Join(parts, "\t")); err != nil {
		L.RaiseError("print: %v", err)
	}
	return 0
}
