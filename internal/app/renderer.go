// internal/app/renderer.go
package app

import (
	"ambient-trail/internal/component"
	"ambient-trail/internal/config"
	"ambient-trail/internal/overlay"
	"ambient-trail/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// GlowRenderer рисует каждую частицу одним спрайтом мягкого свечения,
// окрашенным по ее оттенку и прозрачности.
type GlowRenderer struct {
	sprite *ebiten.Image
	half   float64
	style  render.GlowStyle
	op     ebiten.DrawImageOptions
}

func NewGlowRenderer(cfg config.TrailConfig) *GlowRenderer {
	size := config.GlowSpriteSize
	sprite := ebiten.NewImage(size, size)
	sprite.WritePixels(render.GlowPixels(size))
	return &GlowRenderer{
		sprite: sprite,
		half:   float64(size) / 2,
		style:  glowStyle(cfg),
	}
}

func glowStyle(cfg config.TrailConfig) render.GlowStyle {
	return render.GlowStyle{
		Saturation: config.GlowSaturation,
		Lightness:  config.GlowLightness,
		Intensity:  cfg.GlowIntensity,
	}
}

// Tune применяет новую яркость свечения.
func (r *GlowRenderer) Tune(cfg config.TrailConfig) {
	r.style = glowStyle(cfg)
}

// Draw рисует частицы в логических координатах, переводя их в пиксели
// подложки через масштаб поверхности.
func (r *GlowRenderer) Draw(screen *ebiten.Image, o *overlay.Overlay) {
	surf := o.Surface()
	if !surf.Ready() {
		return
	}
	scale := surf.Scale()
	factor := o.Config().GlowFactor

	o.Each(func(p *component.Particle, opacity float64) {
		radius := render.GlowRadius(p.Size, factor)
		if radius <= 0 || opacity <= 0 {
			return
		}
		c := r.style.HueColor(p.Hue, opacity)

		r.op.GeoM.Reset()
		r.op.GeoM.Translate(-r.half, -r.half)
		r.op.GeoM.Scale(radius/r.half, radius/r.half)
		r.op.GeoM.Translate(p.X, p.Y)
		r.op.GeoM.Scale(scale, scale)
		r.op.ColorScale.Reset()
		r.op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
		r.op.Filter = ebiten.FilterLinear
		screen.DrawImage(r.sprite, &r.op)
	})
}
