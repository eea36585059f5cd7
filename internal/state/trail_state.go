// internal/state/trail_state.go
package state

import (
	"ambient-trail/internal/event"
	"ambient-trail/internal/overlay"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что TrailState соответствует интерфейсу State
var _ State = (*TrailState)(nil)

// Renderer рисует частицы оверлея на экран.
type Renderer interface {
	Draw(screen *ebiten.Image, o *overlay.Overlay)
}

// TrailState — след смонтирован: слушает события и рисуется каждый кадр.
type TrailState struct {
	overlay    *overlay.Overlay
	dispatcher *event.Dispatcher
	renderer   Renderer
	onMount    func() // повторно сообщает текущий размер поверхности
}

func NewTrailState(o *overlay.Overlay, d *event.Dispatcher, r Renderer, onMount func()) *TrailState {
	return &TrailState{
		overlay:    o,
		dispatcher: d,
		renderer:   r,
		onMount:    onMount,
	}
}

func (s *TrailState) Enter() {
	s.overlay.Mount(s.dispatcher)
	if s.onMount != nil {
		s.onMount()
	}
}

// Update — один кадр анимации.
func (s *TrailState) Update() {
	s.overlay.Frame()
}

func (s *TrailState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.overlay)
}

func (s *TrailState) Exit() {
	s.overlay.Unmount()
}
