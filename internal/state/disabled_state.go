// internal/state/disabled_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// Убеждаемся, что DisabledState соответствует интерфейсу State
var _ State = (*DisabledState)(nil)

// DisabledState — след выключен, ничего не смонтировано.
type DisabledState struct{}

func NewDisabledState() *DisabledState {
	return &DisabledState{}
}

func (s *DisabledState) Enter() {}
func (s *DisabledState) Update() {}
func (s *DisabledState) Draw(screen *ebiten.Image) {}
func (s *DisabledState) Exit() {}
