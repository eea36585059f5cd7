// pkg/render/glow.go
package render

import "math"

// GlowAlpha — радиальное затухание свечения: 1 в центре, линейно до 0
// на радиусе r и дальше.
func GlowAlpha(d, r float64) float64 {
	if r <= 0 || d >= r {
		return 0
	}
	if d <= 0 {
		return 1
	}
	return 1 - d/r
}

// GlowRadius — радиус, на котором свечение частицы размера size гаснет полностью.
func GlowRadius(size, factor float64) float64 {
	return size * factor
}

// GlowPixels строит предумноженный RGBA-спрайт size×size белого свечения,
// альфа которого идет по GlowAlpha от центра к краю. Подходит для
// ebiten.Image.WritePixels.
func GlowPixels(size int) []byte {
	pixels := make([]byte, size*size*4)
	if size <= 0 {
		return pixels
	}
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			a := to8(GlowAlpha(math.Hypot(dx, dy), center))
			i := (y*size + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = a, a, a, a
		}
	}
	return pixels
}
