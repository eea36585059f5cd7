// internal/overlay/overlay.go

// Package overlay — компонент следа: один след, одна поверхность и жизненный
// цикл монтирования, подключающий их к источнику событий. Оверлеев может быть
// несколько, глобального состояния нет.
package overlay

import (
	"ambient-trail/internal/component"
	"ambient-trail/internal/config"
	"ambient-trail/internal/event"
	"ambient-trail/internal/surface"
	"ambient-trail/internal/system"

	"go.uber.org/zap"
)

// Overlay — состояние следа одного экземпляра.
type Overlay struct {
	trail      *system.TrailSystem
	surface    *surface.Surface
	dispatcher *event.Dispatcher
	logger     *zap.Logger
	frames     uint64
}

// New создает несмонтированный оверлей.
func New(cfg config.TrailConfig, logger *zap.Logger) *Overlay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Overlay{
		trail:   system.NewTrailSystem(cfg),
		surface: surface.New(cfg.MaxDeviceScale),
		logger:  logger,
	}
}

// Mount подписывает оверлей на события d. Повторный Mount ничего не делает.
func (o *Overlay) Mount(d *event.Dispatcher) {
	if o.dispatcher != nil {
		return
	}
	o.dispatcher = d
	d.Subscribe(event.PointerMoved, o)
	d.Subscribe(event.SurfaceResized, o)
	o.logger.Debug("trail mounted")
}

// Unmount отписывается от событий и удаляет все частицы. Идемпотентен и
// допустим посреди кадра: текущий проход завершится, следующие будут пустыми.
func (o *Overlay) Unmount() {
	if o.dispatcher == nil {
		return
	}
	o.dispatcher.Unsubscribe(event.PointerMoved, o)
	o.dispatcher.Unsubscribe(event.SurfaceResized, o)
	o.dispatcher = nil
	o.trail.Reset()
	o.logger.Debug("trail unmounted", zap.Uint64("frames", o.frames))
	o.frames = 0
}

func (o *Overlay) Mounted() bool {
	return o.dispatcher != nil
}

// OnEvent реализует event.Listener.
func (o *Overlay) OnEvent(e event.Event) {
	if !o.Mounted() {
		return
	}
	switch e.Type {
	case event.PointerMoved:
		if p, ok := e.Data.(event.Pointer); ok {
			o.trail.PointerMoved(p.X, p.Y)
		}
	case event.SurfaceResized:
		if r, ok := e.Data.(event.Resize); ok {
			if o.surface.Resize(r.Width, r.Height, r.Scale) {
				bw, bh := o.surface.Backing()
				o.logger.Debug("surface resized",
					zap.Int("width", r.Width), zap.Int("height", r.Height),
					zap.Float64("scale", o.surface.Scale()),
					zap.Int("backing_width", bw), zap.Int("backing_height", bh))
			}
		}
	}
}

// Frame — один кадр анимации. Ничего не делает, пока оверлей не смонтирован
// на готовую поверхность.
func (o *Overlay) Frame() {
	if !o.Mounted() || !o.surface.Ready() {
		return
	}
	o.frames++
	o.trail.Update()
}

// Each передает fn каждую живую частицу и ее прозрачность.
func (o *Overlay) Each(fn func(p *component.Particle, opacity float64)) {
	o.trail.Each(fn)
}

// Tune меняет параметры следа. Новый предел плотности действует со следующего Resize.
func (o *Overlay) Tune(cfg config.TrailConfig) {
	o.trail.Tune(cfg)
	o.surface.MaxScale = cfg.MaxDeviceScale
}

func (o *Overlay) Config() config.TrailConfig {
	return o.trail.Config()
}

func (o *Overlay) Surface() *surface.Surface {
	return o.surface
}

// Count — число живых частиц.
func (o *Overlay) Count() int {
	return o.trail.Count()
}

// Frames — сколько кадров прошло с момента Mount.
func (o *Overlay) Frames() uint64 {
	return o.frames
}
