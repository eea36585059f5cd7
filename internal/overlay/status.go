// internal/overlay/status.go
package overlay

import (
	"fmt"

	"ambient-trail/internal/event"
)

// Status следит за событиями TrailToggled и собирает строку состояния
// для отладочного HUD.
type Status struct {
	enabled bool
	toggles int
}

// NewStatus создает статус с начальным состоянием следа.
func NewStatus(enabled bool) *Status {
	return &Status{enabled: enabled}
}

// OnEvent реализует event.Listener.
func (s *Status) OnEvent(e event.Event) {
	if e.Type != event.TrailToggled {
		return
	}
	if on, ok := e.Data.(bool); ok {
		s.enabled = on
		s.toggles++
	}
}

func (s *Status) Enabled() bool {
	return s.enabled
}

// Toggles — сколько раз след переключали.
func (s *Status) Toggles() int {
	return s.toggles
}

// Label формирует строку HUD: состояние, число частиц, TPS и плотность.
func (s *Status) Label(o *Overlay, tps float64) string {
	state := "on"
	if !s.enabled {
		state = "off"
	}
	return fmt.Sprintf("trail %s  particles %d  tps %.0f  scale %.2gx",
		state, o.Count(), tps, o.Surface().Scale())
}
