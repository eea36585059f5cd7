// internal/surface/surface.go

// Package surface — геометрия поверхности рисования: логический размер,
// плотность пикселей и вычисленное из них разрешение подложки.
package surface

import (
	"math"

	"ambient-trail/internal/utils"
)

// Surface связывает логические пиксели с пикселями подложки через
// плотность пикселей, ограниченную сверху MaxScale.
type Surface struct {
	MaxScale float64

	width, height int
	scale         float64
}

// New возвращает пустую поверхность. До первого Resize она не Ready.
// Нечисловой или меньший единицы предел заменяется на 1.
func New(maxScale float64) *Surface {
	if math.IsNaN(maxScale) || math.IsInf(maxScale, 0) || maxScale < 1 {
		maxScale = 1
	}
	return &Surface{MaxScale: maxScale, scale: 1}
}

// ClampScale ограничивает плотность отрезком [1, MaxScale].
// Нечисловая или неположительная плотность превращается в 1.
func (s *Surface) ClampScale(deviceScale float64) float64 {
	if math.IsNaN(deviceScale) || deviceScale <= 0 {
		return 1
	}
	return utils.Clamp(deviceScale, 1, s.MaxScale)
}

// Resize применяет новый логический размер и плотность.
// Возвращает true, если что-то изменилось.
func (s *Surface) Resize(width, height int, deviceScale float64) bool {
	scale := s.ClampScale(deviceScale)
	if width == s.width && height == s.height && scale == s.scale {
		return false
	}
	s.width, s.height, s.scale = width, height, scale
	return true
}

// Ready — у поверхности ненулевой размер.
func (s *Surface) Ready() bool {
	return s.width > 0 && s.height > 0
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Scale возвращает действующую (уже ограниченную) плотность.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Backing возвращает разрешение подложки: floor(логический размер * плотность).
func (s *Surface) Backing() (int, int) {
	return int(math.Floor(float64(s.width) * s.scale)), int(math.Floor(float64(s.height) * s.scale))
}

// ToLogical переводит координаты подложки в логические.
func (s *Surface) ToLogical(x, y float64) (float64, float64) {
	return x / s.scale, y / s.scale
}
