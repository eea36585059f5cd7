// internal/component/particle.go
package component

import "math"

// Point — координата в логических пикселях поверхности.
type Point struct {
	X, Y float64
}

// Particle — одна светящаяся точка следа.
type Particle struct {
	X, Y   float64 // позиция
	VX, VY float64 // скорость, пикселей за тик
	Age    float64 // прожито тиков
	MaxAge float64 // полное время жизни в тиках
	Size   float64 // базовый радиус
	Hue    float64 // оттенок в градусах, задается при рождении
}

// LifeFraction возвращает Age/MaxAge. Частица без времени жизни считается прожившей.
func (p *Particle) LifeFraction() float64 {
	if p.MaxAge <= 0 {
		return 1
	}
	return p.Age / p.MaxAge
}

// Opacity возвращает max(0, 1 - LifeFraction), всегда в [0, 1].
// Частица с нечисловым возрастом или временем жизни считается погасшей.
func (p *Particle) Opacity() float64 {
	o := 1 - p.LifeFraction()
	if math.IsNaN(o) || o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// Expired сообщает, что частицу пора удалить.
func (p *Particle) Expired() bool {
	return p.Opacity() <= 0
}

// Step продвигает частицу на один тик: возраст, притяжение к указателю,
// затухание скорости и интегрирование позиции. pointer может быть nil.
func (p *Particle) Step(pointer *Point, attraction, damping float64) {
	p.Age++
	if pointer != nil {
		p.VX += (pointer.X - p.X) * attraction
		p.VY += (pointer.Y - p.Y) * attraction
	}
	p.VX *= damping
	p.VY *= damping
	p.X += p.VX
	p.Y += p.VY
}
