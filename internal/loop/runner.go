// internal/loop/runner.go

// Package loop крутит оверлей без окна: одна горутина владеет оверлеем и
// тикает его с постоянной частотой. Все изменения из других горутин
// передаются ей через Post, поэтому оверлей не трогают конкурентно.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ambient-trail/internal/config"
	"ambient-trail/internal/event"
	"ambient-trail/internal/overlay"

	"go.uber.org/zap"
)

// Runner — отменяемый цикл кадров с постоянным шагом.
type Runner struct {
	overlay    *overlay.Overlay
	dispatcher *event.Dispatcher
	interval   time.Duration
	logger     *zap.Logger

	posts     chan func()
	stop      chan struct{}
	done      chan struct{}
	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
}

// New готовит цикл на tps кадров в секунду. tps <= 0 означает config.TPS.
func New(o *overlay.Overlay, d *event.Dispatcher, tps int, logger *zap.Logger) *Runner {
	if tps <= 0 {
		tps = config.TPS
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		overlay:    o,
		dispatcher: d,
		interval:   time.Second / time.Duration(tps),
		logger:     logger,
		posts:      make(chan func()),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start монтирует оверлей в горутине цикла и начинает тикать.
// Отмена ctx равносильна Stop. Повторные вызовы игнорируются.
func (r *Runner) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.started.Store(true)
		go r.run(ctx)
	})
}

// Interval — длительность одного кадра.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)

	r.overlay.Mount(r.dispatcher)
	defer r.overlay.Unmount()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("frame loop started", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("frame loop cancelled", zap.Error(ctx.Err()))
			return
		case <-r.stop:
			r.logger.Debug("frame loop stopped")
			return
		case fn := <-r.posts:
			fn()
		case <-ticker.C:
			r.overlay.Frame()
		}
	}
}

// Post ставит fn в очередь горутины цикла. Возвращает false, если цикл еще
// не запущен, уже остановлен или завершился; fn тогда не выполняется.
func (r *Runner) Post(fn func()) bool {
	if !r.started.Load() {
		return false
	}
	select {
	case r.posts <- fn:
		return true
	case <-r.stop:
		return false
	case <-r.done:
		return false
	}
}

// Do выполняет fn в горутине цикла и ждет завершения.
func (r *Runner) Do(fn func()) bool {
	finished := make(chan struct{})
	if !r.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	<-finished
	return true
}

// Dispatch доставляет e диспетчеру оверлея в горутине цикла.
func (r *Runner) Dispatch(e event.Event) bool {
	return r.Post(func() { r.dispatcher.Dispatch(e) })
}

// Stop завершает цикл и ждет его. Можно вызывать повторно и до Start.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	r.startOnce.Do(func() {
		close(r.done)
	})
	<-r.done
}

// Done закрывается, когда горутина цикла завершилась.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
