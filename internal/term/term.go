// internal/term/term.go

// Package term рисует след в терминале. Каждая ячейка покрывает
// config.CellWidth × config.CellHeight логических пикселей; свечение частиц
// накапливается по ячейкам и выводится цветом фона.
package term

import (
	"context"
	"math"
	"time"

	"ambient-trail/internal/component"
	"ambient-trail/internal/config"
	"ambient-trail/internal/event"
	"ambient-trail/internal/overlay"
	"ambient-trail/pkg/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Terminal владеет экраном tcell и одним оверлеем, который на нем рисуется.
type Terminal struct {
	screen     tcell.Screen
	overlay    *overlay.Overlay
	dispatcher *event.Dispatcher
	style      render.GlowStyle
	tps        int
	logger     *zap.Logger

	cols, rows int
	cells      []render.RGBA
	lastCol    int
	lastRow    int
}

// New готовит поверхность на уже инициализированном экране.
func New(screen tcell.Screen, cfg *config.Config, logger *zap.Logger) *Terminal {
	if logger == nil {
		logger = zap.NewNop()
	}
	trail := cfg.Trail
	trail.MaxDeviceScale = 1 // ячейки не масштабируются
	return &Terminal{
		screen:     screen,
		overlay:    overlay.New(trail, logger),
		dispatcher: event.NewDispatcher(),
		style: render.GlowStyle{
			Saturation: config.GlowSaturation,
			Lightness:  config.GlowLightness,
			Intensity:  trail.GlowIntensity,
		},
		tps:     cfg.Window.TPS,
		logger:  logger,
		lastCol: -1,
		lastRow: -1,
	}
}

// Tune применяет новые параметры следа; плотность остается равной 1.
func (t *Terminal) Tune(cfg config.TrailConfig) {
	cfg.MaxDeviceScale = 1
	t.overlay.Tune(cfg)
	t.style.Intensity = cfg.GlowIntensity
}

func (t *Terminal) Overlay() *overlay.Overlay {
	return t.overlay
}

// Mount подключает след и сообщает ему текущий размер экрана.
func (t *Terminal) Mount() {
	t.overlay.Mount(t.dispatcher)
	t.resize(t.screen.Size())
}

// Unmount отключает след и забывает последнюю ячейку мыши.
func (t *Terminal) Unmount() {
	t.overlay.Unmount()
	t.lastCol, t.lastRow = -1, -1
}

func (t *Terminal) resize(cols, rows int) {
	if cols != t.cols || rows != t.rows {
		t.cols, t.rows = cols, rows
		t.cells = make([]render.RGBA, cols*rows)
	}
	t.dispatcher.Dispatch(event.Event{
		Type: event.SurfaceResized,
		Data: event.Resize{Width: cols * config.CellWidth, Height: rows * config.CellHeight, Scale: 1},
	})
}

// HandleEvent обрабатывает одно событие tcell. Возвращает false, если
// пользователь попросил выйти.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				if ev.Modifiers()&tcell.ModCtrl != 0 {
					return false
				}
			case 't':
				if t.overlay.Mounted() {
					t.Unmount()
				} else {
					t.Mount()
				}
				t.logger.Info("trail toggled", zap.Bool("enabled", t.overlay.Mounted()))
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		if col == t.lastCol && row == t.lastRow {
			return true
		}
		t.lastCol, t.lastRow = col, row
		t.dispatcher.Dispatch(event.Event{
			Type: event.PointerMoved,
			Data: event.Pointer{
				X: (float64(col) + 0.5) * config.CellWidth,
				Y: (float64(row) + 0.5) * config.CellHeight,
			},
		})
	case *tcell.EventResize:
		t.resize(ev.Size())
		t.screen.Sync()
	}
	return true
}

// Frame продвигает след на кадр и перерисовывает экран.
func (t *Terminal) Frame() {
	t.overlay.Frame()
	t.paint()
}

func (t *Terminal) paint() {
	for i := range t.cells {
		t.cells[i] = render.RGBA{}
	}
	factor := t.overlay.Config().GlowFactor
	t.overlay.Each(func(p *component.Particle, opacity float64) {
		t.splat(p, opacity, render.GlowRadius(p.Size, factor))
	})

	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			bg := t.cells[row*t.cols+col].Blend(config.BackgroundColor)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	t.screen.Show()
}

// splat добавляет свечение частицы во все ячейки, чей центр лежит внутри радиуса.
func (t *Terminal) splat(p *component.Particle, opacity, radius float64) {
	if radius <= 0 || opacity <= 0 {
		return
	}
	c := t.style.HueColor(p.Hue, opacity)

	// ячейка, содержащая частицу, светится всегда, даже если радиус меньше ячейки
	minCol := int(math.Floor((p.X - radius) / config.CellWidth))
	maxCol := int(math.Floor((p.X + radius) / config.CellWidth))
	minRow := int(math.Floor((p.Y - radius) / config.CellHeight))
	maxRow := int(math.Floor((p.Y + radius) / config.CellHeight))
	homeCol := int(math.Floor(p.X / config.CellWidth))
	homeRow := int(math.Floor(p.Y / config.CellHeight))

	for row := max(minRow, 0); row <= min(maxRow, t.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, t.cols-1); col++ {
			cx := (float64(col) + 0.5) * config.CellWidth
			cy := (float64(row) + 0.5) * config.CellHeight
			a := render.GlowAlpha(math.Hypot(cx-p.X, cy-p.Y), radius)
			if col == homeCol && row == homeRow && a <= 0 {
				a = 1
			}
			if a <= 0 {
				continue
			}
			i := row*t.cols + col
			t.cells[i] = c.Scale(a).Over(t.cells[i])
		}
	}
}

// Run включает отчеты о движении мыши и крутит кадры, пока не отменен ctx
// или пользователь не вышел. Значения из tuning применяются между кадрами;
// nil-канал допустим. Init и Fini экрана остаются за вызывающим.
func (t *Terminal) Run(ctx context.Context, tuning <-chan config.TrailConfig) error {
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	defer t.screen.DisableMouse()

	t.Mount()
	defer t.Unmount()

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tps := t.tps
	if tps <= 0 {
		tps = config.TPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	t.logger.Info("terminal trail started", zap.Int("cols", t.cols), zap.Int("rows", t.rows))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case cfg := <-tuning:
			t.Tune(cfg)
			t.logger.Info("trail retuned", zap.Int("spawn_batch", cfg.SpawnBatch))
		case <-ticker.C:
			t.Frame()
		}
	}
}
