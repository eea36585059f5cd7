package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testStyle = GlowStyle{Saturation: 1, Lightness: 0.6, Intensity: 0.7}

func TestHueColorIsPremultiplied(t *testing.T) {
	c := testStyle.HueColor(200, 1)
	assert.InDelta(t, 0.7, c.A, 1e-9)
	assert.LessOrEqual(t, c.R, c.A)
	assert.LessOrEqual(t, c.G, c.A)
	assert.LessOrEqual(t, c.B, c.A)
}

func TestHueColorCyanToPurple(t *testing.T) {
	cyan := testStyle.HueColor(180, 1)
	assert.Greater(t, cyan.B, cyan.R)
	assert.Greater(t, cyan.G, cyan.R)

	purple := testStyle.HueColor(270, 1)
	assert.Greater(t, purple.B, purple.G)
	assert.Greater(t, purple.R, purple.G)
}

func TestHueColorTransparentWhenFaded(t *testing.T) {
	c := testStyle.HueColor(220, 0)
	assert.Equal(t, RGBA{}, c)
	assert.Equal(t, color.RGBA{R: 10, G: 10, B: 18, A: 255}, c.Blend(color.RGBA{R: 10, G: 10, B: 18, A: 255}))
}

func TestGlowAlphaFalloff(t *testing.T) {
	assert.Equal(t, 1.0, GlowAlpha(0, 12))
	assert.InDelta(t, 0.5, GlowAlpha(6, 12), 1e-12)
	assert.Equal(t, 0.0, GlowAlpha(12, 12))
	assert.Equal(t, 0.0, GlowAlpha(20, 12))
	assert.Equal(t, 0.0, GlowAlpha(0, 0))

	prev := 1.0
	for d := 0.0; d <= 12; d += 0.5 {
		a := GlowAlpha(d, 12)
		assert.LessOrEqual(t, a, prev)
		prev = a
	}
}

func TestGlowPixels(t *testing.T) {
	const size = 32
	px := GlowPixels(size)
	assert.Len(t, px, size*size*4)

	at := func(x, y int) byte { return px[(y*size+x)*4+3] }
	assert.Greater(t, at(size/2, size/2), byte(240))
	assert.Equal(t, byte(0), at(0, 0))
	assert.Greater(t, at(size/2, size/2), at(size/2+8, size/2))

	// premultiplied white: colour channels equal alpha
	i := (size/2*size + size/2) * 4
	assert.Equal(t, px[i+3], px[i])
}

func TestOverAndBlend(t *testing.T) {
	red := RGBA{R: 0.5, A: 0.5}
	blue := RGBA{B: 1, A: 1}
	c := red.Over(blue)
	assert.InDelta(t, 0.5, c.R, 1e-12)
	assert.InDelta(t, 0.5, c.B, 1e-12)
	assert.InDelta(t, 1.0, c.A, 1e-12)

	bg := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, color.RGBA{128, 0, 0, 255}, red.Blend(bg))
	assert.Equal(t, bg, RGBA{}.Blend(bg))
}

func TestGlowRadius(t *testing.T) {
	assert.Equal(t, 18.0, GlowRadius(3, 6))
}
