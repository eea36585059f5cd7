// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — режим оверлея. Update вызывается раз в тик ebiten, длительность
// тика не передается: след считает время в кадрах.
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий режим и переключает их парой Exit/Enter.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переключает режим. Exit предыдущего вызывается ровно один раз,
// до Enter нового; nil означает "без режима".
func (sm *StateMachine) SetState(next State) {
	prev := sm.current
	sm.current = nil
	if prev != nil {
		prev.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Close выходит из текущего режима, не входя в новый. Повторный вызов пуст.
func (sm *StateMachine) Close() {
	sm.SetState(nil)
}
