// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие с необязательными данными
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Вызывается из одного потока
// (цикла кадров), обработчики выполняются прямо внутри Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подключает listener к событиям eventType.
// Повторная подписка того же слушателя ничего не меняет.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if d.indexOf(eventType, listener) >= 0 {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe отключает listener. Срез подписчиков копируется, поэтому
// отписка из OnEvent не ломает идущий Dispatch.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	i := d.indexOf(eventType, listener)
	if i < 0 {
		return
	}
	listeners := d.listeners[eventType]
	if len(listeners) == 1 {
		delete(d.listeners, eventType)
		return
	}
	rest := make([]Listener, 0, len(listeners)-1)
	rest = append(rest, listeners[:i]...)
	d.listeners[eventType] = append(rest, listeners[i+1:]...)
}

func (d *Dispatcher) indexOf(eventType EventType, listener Listener) int {
	for i, l := range d.listeners[eventType] {
		if l == listener {
			return i
		}
	}
	return -1
}

// Dispatch отправляет событие подписчикам в порядке подписки.
// Без подписчиков ничего не происходит.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// ListenerCount возвращает число подписчиков на тип события.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
