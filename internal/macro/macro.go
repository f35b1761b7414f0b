// Package macro runs Lua scripts against an editor. Scripts see a global
// table "scene" whose functions call the editor operations, so everything a
// script does lands in the same undo history as interactive edits.
//
//	local id = scene.add("cube")
//	scene.update(id, { position = {1, 0, 0}, color = "#ff0000" })
//	scene.duplicate(id)
//	scene.undo()
package macro

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"sceneeditor/internal/editor"

	lua "github.com/yuin/gopher-lua"
)

// Runner executes scripts. It must be used from the goroutine that owns
// the editor.
type Runner struct {
	ed  *editor.Editor
	log *slog.Logger
	out io.Writer
}

type Option func(*Runner)

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOutput sends script print() output to w instead of the logger.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

func New(ed *editor.Editor, opts ...Option) *Runner {
	r := &Runner{ed: ed, log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes src. name is used in errors and log records.
func (r *Runner) Run(ctx context.Context, name, src string) error {
	L := r.newState(name)
	defer L.Close()

	if ctx != nil {
		L.SetContext(ctx)
	}
	if err := L.DoString(src); err != nil {
		return fmt.Errorf("macro %s: %w", name, err)
	}
	r.log.Debug("macro done", "name", name)
	return nil
}

// RunFile reads and executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("macro %s: %w", path, err)
	}
	return r.Run(ctx, path, string(src))
}

func (r *Runner) newState(name string) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, fn := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(fn, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(r.print(name)))
	L.SetGlobal("scene", r.sceneTable(L))
	return L
}

func (r *Runner) print(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		line := strings.Join(parts, "\t")
		if r.out != nil {
			fmt.Fprintln(r.out, line)
		} else {
			r.log.Info(line, "macro", name)
		}
		return 0
	}
}
