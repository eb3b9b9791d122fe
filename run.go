package nodegraph

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	// Zero means 640x480.
	Width, Height int
	// Resizable allows the user to resize the window.
	Resizable bool
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug enables stderr timing and counters (see SetDebug).
	Debug bool
}

// App hosts a Canvas in an Ebitengine window. It implements ebiten.Game:
// each tick it reads the pointer (or the injected queue), dispatches events
// to the canvas, then hands every published message to the update function.
//
// The canvas is kept across frames; the update function mutates it (camera,
// node positions, children) in response to messages.
type App[M any] struct {
	Canvas *Canvas[M]
	Theme  *Theme

	// ClearColor fills the window before the canvas draws.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	update   func(M)
	tick     func() error
	store    EntityStore
	injector Injector
	runner   *TestRunner
	shell    *Shell[M]

	ptr      pointerState
	events   []Event
	touchBuf []ebiten.TouchID
	cursor   Cursor

	root    LayoutNode
	surface *EbitenSurface
	width   int
	height  int

	screenshotQueue []string
	fps             *fpsOverlay
}

// NewApp returns an App showing canvas. update receives every message the
// canvas publishes; it may be nil.
func NewApp[M any](canvas *Canvas[M], update func(M)) *App[M] {
	return &App[M]{
		Canvas:        canvas,
		Theme:         &ThemeDark,
		ClearColor:    ColorBlack,
		ScreenshotDir: "screenshots",
		update:        update,
		shell:         NewShell[M](nil),
		width:         640,
		height:        480,
	}
}

// SetUpdateFunc sets a callback run at the start of every tick, before input
// is processed. Returning an error stops the game loop.
func (a *App[M]) SetUpdateFunc(fn func() error) {
	a.tick = fn
}

// SetEntityStore forwards interaction events to store.
func (a *App[M]) SetEntityStore(store EntityStore) {
	a.store = store
	a.shell.store = store
}

// SetTestRunner attaches a script; it is advanced once per tick.
func (a *App[M]) SetTestRunner(r *TestRunner) {
	a.runner = r
}

// Injector returns the synthetic input queue. Queued samples take the place
// of real input, one per tick.
func (a *App[M]) Injector() *Injector {
	return &a.injector
}

// Size returns the current logical screen size.
func (a *App[M]) Size() (int, int) {
	return a.width, a.height
}

// Viewport returns the screen rectangle the canvas is laid out in.
func (a *App[M]) Viewport() Rect {
	return Rect{Width: float64(a.width), Height: float64(a.height)}
}

func (a *App[M]) limits() Limits {
	return NewLimits(Size{}, Size{float64(a.width), float64(a.height)})
}

// Update implements ebiten.Game.
func (a *App[M]) Update() error {
	start := time.Now()

	if a.runner != nil {
		a.runner.step(a)
	}
	if a.tick != nil {
		if err := a.tick(); err != nil {
			return err
		}
	}

	sample, ok := a.injector.next()
	if !ok {
		sample, a.touchBuf = readPointerSample(a.touchBuf, a.width, a.height)
	}
	a.events, a.cursor = a.ptr.translate(a.events[:0], sample)

	a.root = a.Canvas.Layout(a.limits())
	layout := NewLayout(&a.root, Vec2{})
	for _, ev := range a.events {
		a.Canvas.HandleEvent(ev, layout, a.cursor, a.shell)
	}

	published := len(a.shell.Messages())
	if a.update != nil {
		for _, m := range a.shell.Messages() {
			a.update(m)
		}
	}
	a.shell.Reset()

	// Lay out again so Draw sees the state the messages produced.
	a.root = a.Canvas.Layout(a.limits())

	if debugEnabled() && (len(a.events) > 0 || published > 0) {
		debugLog("update: %d events | %d messages | %v", len(a.events), published, time.Since(start))
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App[M]) Draw(screen *ebiten.Image) {
	start := time.Now()
	screen.Fill(a.ClearColor.toRGBA())

	if a.surface == nil {
		a.surface = NewEbitenSurface(screen)
	} else {
		a.surface.Reset(screen)
	}
	theme := themeOrDefault(a.Theme)
	layout := NewLayout(&a.root, Vec2{})
	a.Canvas.Draw(a.surface, theme, RenderStyle{TextColor: theme.Text}, layout, a.cursor, a.Viewport())

	if a.fps != nil {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)

	if debugEnabled() {
		debugLog("draw: %d triangles | %v", a.surface.TriangleCount, time.Since(start))
	}
}

// Layout implements ebiten.Game. The logical size tracks the window.
func (a *App[M]) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs app until the window is closed or the update
// function returns an error.
func Run[M any](app *App[M], cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	app.width, app.height = w, h

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		app.fps = newFPSOverlay()
	}
	if cfg.Debug {
		SetDebug(true)
	}

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
