// internal/loop/simulate.go
package loop

import (
	"context"
	"fmt"
	"math"
	"time"

	"ambient-trail/internal/config"
	"ambient-trail/internal/event"
	"ambient-trail/internal/overlay"

	"go.uber.org/zap"
)

// SimulationOptions — сценарий движения указателя для запуска без окна.
type SimulationOptions struct {
	Moves  int     // сколько событий движения отправить
	Width  int     // логический размер поверхности
	Height int
	Step   float64 // шаг указателя между событиями, логические пиксели
}

// Summary — итоги запуска без окна.
type Summary struct {
	Moves     int
	Spawned   int
	Peak      int
	Remaining int
	Frames    uint64
	Elapsed   time.Duration
}

// Simulate ведет синтетический указатель по поверхности, по одному событию на
// кадр, затем тикает, пока не погаснут все частицы или не завершится ctx.
func Simulate(ctx context.Context, cfg *config.Config, opts SimulationOptions, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if opts.Moves < 0 {
		return Summary{}, fmt.Errorf("moves must not be negative, got %d", opts.Moves)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = cfg.Window.Width, cfg.Window.Height
	}
	if opts.Step <= 0 {
		opts.Step = 12
	}

	o := overlay.New(cfg.Trail, logger)
	d := event.NewDispatcher()
	r := New(o, d, cfg.Window.TPS, logger)
	r.Start(ctx)
	defer r.Stop()

	started := time.Now()
	r.Dispatch(event.Event{
		Type: event.SurfaceResized,
		Data: event.Resize{Width: opts.Width, Height: opts.Height, Scale: 1},
	})

	sum := Summary{Moves: opts.Moves}
	tick := r.Interval()
	y := float64(opts.Height) / 2
	for i := 0; i < opts.Moves; i++ {
		x := math.Mod(float64(i)*opts.Step, float64(opts.Width))
		ok := r.Do(func() {
			before := o.Count()
			d.Dispatch(event.Event{Type: event.PointerMoved, Data: event.Pointer{X: x, Y: y}})
			sum.Spawned += o.Count() - before
			sum.Peak = max(sum.Peak, o.Count())
		})
		if !ok {
			return sum, fmt.Errorf("simulation interrupted after %d moves: %w", i, context.Cause(ctx))
		}
		time.Sleep(tick)
	}

	// ждем, пока погаснет последняя частица
	drain := time.Duration(math.Ceil(cfg.Trail.LifeMax)+2) * tick * 4
	deadline := time.NewTimer(drain)
	defer deadline.Stop()
	poll := time.NewTicker(tick)
	defer poll.Stop()
	for {
		r.Do(func() {
			sum.Remaining = o.Count()
			sum.Frames = o.Frames()
		})
		if sum.Remaining == 0 {
			break
		}
		select {
		case <-ctx.Done():
			sum.Elapsed = time.Since(started)
			return sum, fmt.Errorf("simulation interrupted: %w", context.Cause(ctx))
		case <-deadline.C:
			sum.Elapsed = time.Since(started)
			logger.Warn("particles outlived drain window", zap.Int("remaining", sum.Remaining))
			return sum, nil
		case <-poll.C:
		}
	}
	sum.Elapsed = time.Since(started)
	logger.Info("simulation finished",
		zap.Int("moves", sum.Moves), zap.Int("spawned", sum.Spawned),
		zap.Int("peak", sum.Peak), zap.Uint64("frames", sum.Frames),
		zap.Duration("elapsed", sum.Elapsed))
	return sum, nil
}
