// internal/event/types.go
package event

const (
	PointerMoved   EventType = "PointerMoved"   // указатель сдвинулся, Data: Pointer
	SurfaceResized EventType = "SurfaceResized" // изменился размер поверхности, Data: Resize
	TrailToggled   EventType = "TrailToggled"   // след включен или выключен, Data: bool
)

// Pointer — позиция указателя в логических пикселях.
type Pointer struct {
	X, Y float64
}

// Resize — новый логический размер поверхности и плотность пикселей.
type Resize struct {
	Width, Height int
	Scale         float64
}
