// internal/app/hud.go
package app

import (
	"bytes"
	"fmt"

	"ambient-trail/internal/config"
	"ambient-trail/internal/overlay"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD — отладочная строка в углу: состояние следа, число частиц, TPS и масштаб.
// Состояние следа HUD узнает из событий TrailToggled через Status.
type HUD struct {
	source *text.GoTextFaceSource
	status *overlay.Status
}

func NewHUD(enabled bool) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &HUD{source: src, status: overlay.NewStatus(enabled)}, nil
}

// Status — слушатель, которого нужно подписать на TrailToggled.
func (h *HUD) Status() *overlay.Status {
	return h.status
}

func (h *HUD) Draw(screen *ebiten.Image, o *overlay.Overlay) {
	scale := o.Surface().Scale()
	if scale <= 0 {
		scale = 1
	}
	label := h.status.Label(o, ebiten.ActualTPS())

	face := &text.GoTextFace{Source: h.source, Size: config.HUDFontSize * scale}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.HUDMargin*scale, config.HUDMargin*scale)
	op.ColorScale.ScaleWithColor(config.HUDTextColor)
	text.Draw(screen, label, face, op)
}
