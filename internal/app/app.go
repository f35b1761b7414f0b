// Package app is the interactive editor window: viewport, outliner,
// properties panel and toolbar on top of one editor.Editor. Everything runs
// on the raylib main thread.
package app

import (
	"context"
	"log/slog"

	"sceneeditor/internal/assets"
	"sceneeditor/internal/audio"
	"sceneeditor/internal/camera"
	"sceneeditor/internal/config"
	"sceneeditor/internal/editor"
	"sceneeditor/internal/gizmo"
	"sceneeditor/internal/mirror"
	"sceneeditor/internal/picker"
	"sceneeditor/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type App struct {
	ed     *editor.Editor
	cfg    config.Config
	log    *slog.Logger
	level  *slog.LevelVar
	cache  *assets.Cache
	mirror *mirror.Mirror
	picker *picker.Picker
	cam    *camera.Fly

	reloads <-chan config.Reload
	cues     *audio.Cues
	openCues func(volume float32) (*audio.Cues, error)

	// viewport interaction
	drag    *gizmo.AxisDrag
	hotAxis int

	// panels
	outlinerScroll int32
	editingName    bool
	nameID         uuid.UUID
	nameBuffer     string
	scrub          *gizmo.Scrub
	typingField    *gizmo.Field
	typingID       uuid.UUID
	typingBuffer   string
	pickingColor   bool
	colorID        uuid.UUID
	colorStart     string

	status status
	now    func() float64
}

type Option func(*App)

// WithConfigReloads feeds hot-reloaded config into the frame loop.
func WithConfigReloads(ch <-chan config.Reload) Option {
	return func(a *App) {
		a.reloads = ch
	}
}

// WithLevel lets a reload change the log level of the running program.
func WithLevel(level *slog.LevelVar) Option {
	return func(a *App) {
		a.level = level
	}
}

// WithSounds plays a cue for each committed edit while sounds are on. The
// device is opened through open the first time the config turns them on.
func WithSounds(open func(volume float32) (*audio.Cues, error)) Option {
	return func(a *App) {
		a.openCues = open
	}
}

// New wires the collaborators around ed. No window is opened until Run.
func New(ed *editor.Editor, cfg config.Config, log *slog.Logger, opts ...Option) *App {
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		ed:      ed,
		cfg:     cfg,
		log:     log,
		cache:   assets.NewCache(),
		cam:     camera.New(rl.Vector3{X: 6, Y: 5, Z: 8}, rl.Vector3{}),
		hotAxis: -1,
		now:     rl.GetTime,
	}
	a.mirror = mirror.New(viewport.NewBackend(a.cache, cfg.Assets.MushroomModel), log)
	a.picker = picker.New(ed, a.mirror)
	for _, opt := range opts {
		opt(a)
	}
	a.syncSounds()

	ed.Changed.AddListener(func(c editor.Change) {
		if msg, ok := describe(ed, c); ok {
			a.status.set(msg, false, a.now())
		}
		if cue, ok := cueFor(c); ok && a.cues != nil && a.cfg.Editor.Sounds {
			a.cues.Play(cue)
		}
	})
	return a
}

// Run opens the window and loops until it is closed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.Window.Title)
	defer rl.CloseWindow()
	// Esc clears the selection instead of closing the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(a.cfg.Window.TargetFPS)
	initStyle()

	defer a.cache.Unload()
	defer a.mirror.Close()
	defer func() {
		if a.cues != nil {
			a.cues.Close()
		}
	}()

	a.log.Info("editor started", "objects", a.ed.Len())
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		a.Frame(rl.GetFrameTime())
	}
	a.endGestures()
	a.log.Info("editor closed")
	return nil
}

// Frame runs one tick: config reloads, input, mirror sync, draw. Apart
// from editor operations it only reads editor state.
func (a *App) Frame(dt float32) {
	a.applyReloads()
	rl.SetMouseCursor(rl.MouseCursorDefault)

	if !rl.IsWindowFocused() {
		a.endGestures()
	}
	a.handleHotkeys()
	a.updateViewport(dt)

	a.mirror.SyncFrom(a.ed)

	rl.BeginDrawing()
	rl.ClearBackground(colorViewport)

	ov := a.overlay()
	rl.BeginMode3D(a.cam.Raylib())
	viewport.Draw(a.mirror, a.ed.SelectedIDs(), ov)
	rl.EndMode3D()

	a.drawTopBar()
	a.drawOutliner()
	a.drawProperties()
	rl.EndDrawing()
}

// endGestures commits any drag, scrub or color pick in progress. Losing
// focus mid-drag would otherwise leave transient values outside history.
func (a *App) endGestures() {
	if a.drag != nil {
		a.drag.End()
		a.drag = nil
	}
	if a.scrub != nil {
		a.scrub.End()
		a.scrub = nil
	}
	a.endColorPick()
}

func (a *App) applyReloads() {
	if a.reloads == nil {
		return
	}
	select {
	case r, ok := <-a.reloads:
		if !ok {
			a.reloads = nil
			return
		}
		a.applyConfig(r)
	default:
	}
}

// applyConfig takes the settings that can change while running. Window
// size and asset paths need a restart.
func (a *App) applyConfig(r config.Reload) {
	if r.Err != nil {
		a.log.Warn("config reload failed", "err", r.Err)
		a.status.set("Config error, keeping previous settings", true, a.now())
		return
	}
	a.ed.SetHistoryLimit(r.Config.Editor.HistoryLimit)
	if a.level != nil {
		if l, err := config.ParseLevel(r.Config.Editor.LogLevel); err == nil {
			a.level.Set(l)
		}
	}
	a.cfg.Editor = r.Config.Editor
	a.syncSounds()
	a.log.Info("config reloaded", "history_limit", r.Config.Editor.HistoryLimit, "log_level", r.Config.Editor.LogLevel)
	a.status.set("Config reloaded", false, a.now())
}

// syncSounds opens the audio device once sounds are enabled and keeps the
// cue volume in step with the config. A failed open is retried on the next
// reload.
func (a *App) syncSounds() {
	if !a.cfg.Editor.Sounds || a.openCues == nil {
		return
	}
	if a.cues != nil {
		a.cues.SetVolume(a.cfg.Editor.SoundVolume)
		return
	}
	cues, err := a.openCues(a.cfg.Editor.SoundVolume)
	if err != nil {
		a.log.Warn("sounds disabled", "err", err)
		return
	}
	a.cues = cues
}

// overlay describes the gizmo for this frame.
func (a *App) overlay() viewport.Overlay {
	ov := viewport.Overlay{Mode: a.ed.TransformMode(), HotAxis: a.hotAxis}
	id, ok := gizmo.Target(a.ed, a.mirror)
	if !ok {
		return ov
	}
	obj, _ := a.ed.Object(id)
	ov.Visible = true
	ov.Center = obj.Position
	if a.drag != nil {
		ov.HotAxis = a.drag.Axis
	}
	return ov
}
