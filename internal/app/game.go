// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"

	"ambient-trail/internal/config"
	"ambient-trail/internal/event"
	"ambient-trail/internal/overlay"
	"ambient-trail/internal/state"
	"ambient-trail/internal/surface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game реализует ebiten.Game: опрашивает указатель и размер окна, превращает
// их в события и гоняет машину состояний оверлея.
type Game struct {
	ctx    context.Context
	cfg    *config.Config
	logger *zap.Logger

	stateMachine *state.StateMachine
	dispatcher   *event.Dispatcher
	overlay      *overlay.Overlay
	renderer     *GlowRenderer
	hud          *HUD
	showHUD      bool

	surface   *surface.Surface // геометрия окна, независимо от того, смонтирован ли след
	cursorX   int
	cursorY   int
	hasCursor bool
	tuning    chan config.TrailConfig
}

// NewGame собирает оверлей в состоянии "след включен".
func NewGame(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	hud, err := NewHUD(true)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ctx:          ctx,
		cfg:          cfg,
		logger:       logger,
		stateMachine: state.NewStateMachine(),
		dispatcher:   event.NewDispatcher(),
		overlay:      overlay.New(cfg.Trail, logger),
		renderer:     NewGlowRenderer(cfg.Trail),
		hud:          hud,
		showHUD:      cfg.Window.HUD,
		surface:      surface.New(cfg.Trail.MaxDeviceScale),
		tuning:       make(chan config.TrailConfig, 1),
	}
	g.dispatcher.Subscribe(event.TrailToggled, hud.Status())
	g.stateMachine.SetState(g.trailState())
	return g, nil
}

func (g *Game) trailState() state.State {
	return state.NewTrailState(g.overlay, g.dispatcher, g.renderer, g.announceSurface)
}

// announceSurface повторно сообщает текущий размер, чтобы только что
// смонтированный след получил поверхность, изменившуюся пока он был выключен.
func (g *Game) announceSurface() {
	if !g.surface.Ready() {
		return
	}
	w, h := g.surface.Size()
	g.dispatcher.Dispatch(event.Event{
		Type: event.SurfaceResized,
		Data: event.Resize{Width: w, Height: h, Scale: g.surface.Scale()},
	})
}

// Retune передает новые параметры следа из любой горутины. Применяются они
// в следующем Update; необработанная предыдущая версия отбрасывается.
func (g *Game) Retune(cfg config.TrailConfig) {
	for {
		select {
		case g.tuning <- cfg:
			return
		default:
		}
		select {
		case <-g.tuning:
		default:
		}
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if !g.cfg.Window.Overlay && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case cfg := <-g.tuning:
		g.overlay.Tune(cfg)
		g.renderer.Tune(cfg)
		g.surface.MaxScale = cfg.MaxDeviceScale
		g.logger.Info("trail retuned", zap.Int("spawn_batch", cfg.SpawnBatch))
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.pollCursor()

	g.stateMachine.Update()
	return nil
}

func (g *Game) toggle() {
	enabled := !g.overlay.Mounted()
	if enabled {
		g.stateMachine.SetState(g.trailState())
	} else {
		g.stateMachine.SetState(state.NewDisabledState())
	}
	g.dispatcher.Dispatch(event.Event{Type: event.TrailToggled, Data: enabled})
	g.logger.Info("trail toggled", zap.Bool("enabled", enabled))
}

// pollCursor превращает изменение позиции курсора в событие PointerMoved.
func (g *Game) pollCursor() {
	if !g.surface.Ready() {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.hasCursor && x == g.cursorX && y == g.cursorY {
		return
	}
	bw, bh := g.surface.Backing()
	if x < 0 || y < 0 || x >= bw || y >= bh {
		return
	}
	g.cursorX, g.cursorY, g.hasCursor = x, y, true
	lx, ly := g.surface.ToLogical(float64(x), float64(y))
	g.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.Pointer{X: lx, Y: ly}})
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.cfg.Window.Overlay {
		screen.Fill(config.BackgroundColor)
	}
	g.stateMachine.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.overlay)
	}
}

// Layout подгоняет разрешение подложки под плотность пикселей монитора.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	deviceScale := 1.0
	if m := ebiten.Monitor(); m != nil {
		deviceScale = m.DeviceScaleFactor()
	}
	if g.surface.Resize(outsideWidth, outsideHeight, deviceScale) {
		w, h := g.surface.Size()
		g.dispatcher.Dispatch(event.Event{
			Type: event.SurfaceResized,
			Data: event.Resize{Width: w, Height: h, Scale: g.surface.Scale()},
		})
	}
	bw, bh := g.surface.Backing()
	if bw <= 0 || bh <= 0 {
		return 1, 1
	}
	return bw, bh
}

// Close размонтирует след. Повторный вызов ничего не делает.
func (g *Game) Close() {
	g.stateMachine.Close()
}

// Run открывает окно и блокируется до его закрытия или отмены ctx.
func (g *Game) Run() error {
	defer g.Close()

	win := g.cfg.Window
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetTPS(win.TPS)
	if win.Overlay {
		w, h := win.Width, win.Height
		if m := ebiten.Monitor(); m != nil {
			w, h = m.Size()
		}
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(true)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowPosition(0, 0)
	} else {
		ebiten.SetWindowSize(win.Width, win.Height)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g.logger.Info("starting trail window",
		zap.Bool("overlay", win.Overlay), zap.Int("tps", win.TPS))
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: win.Overlay})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
