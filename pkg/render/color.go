// pkg/render/color.go
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GlowStyle — общие для всех частиц параметры цвета свечения.
type GlowStyle struct {
	Saturation float64 // насыщенность HSL, 0..1
	Lightness  float64 // светлота HSL, 0..1
	Intensity  float64 // множитель альфы в центре, 0..1
}

// RGBA — цвет с предумноженной альфой, компоненты в [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// HueColor возвращает предумноженный цвет частицы по оттенку (в градусах)
// и прозрачности.
func (s GlowStyle) HueColor(hue, opacity float64) RGBA {
	c := colorful.Hsl(hue, s.Saturation, s.Lightness).Clamped()
	a := clamp01(opacity * s.Intensity)
	return RGBA{R: c.R * a, G: c.G * a, B: c.B * a, A: a}
}

// Over накладывает c поверх dst (оба предумножены).
func (c RGBA) Over(dst RGBA) RGBA {
	k := 1 - c.A
	return RGBA{
		R: c.R + dst.R*k,
		G: c.G + dst.G*k,
		B: c.B + dst.B*k,
		A: c.A + dst.A*k,
	}
}

// Scale умножает все компоненты на f.
func (c RGBA) Scale(f float64) RGBA {
	return RGBA{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// Blend смешивает c с непрозрачным фоном.
func (c RGBA) Blend(bg color.RGBA) color.RGBA {
	k := 1 - clamp01(c.A)
	return color.RGBA{
		R: to8(c.R + float64(bg.R)/255*k),
		G: to8(c.G + float64(bg.G)/255*k),
		B: to8(c.B + float64(bg.B)/255*k),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
