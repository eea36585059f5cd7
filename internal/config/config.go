// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280 // размер окна в оконном режиме
	ScreenHeight = 800
	TPS          = 60 // кадров симуляции в секунду

	// Рождение частиц
	SpawnBatch = 4 // частиц на одно движение указателя
	SpeedMin   = 0.2
	SpeedMax   = 0.8
	LifeMin    = 60.0 // в тиках
	LifeMax    = 80.0
	SizeMin    = 2.0
	SizeMax    = 4.0
	HueMin     = 170.0 // cyan
	HueMax     = 270.0 // purple

	// Движение
	Attraction = 0.0005 // доля вектора до указателя, добавляемая к скорости
	Damping    = 0.98   // множитель скорости за тик

	// Отрисовка
	GlowFactor     = 6.0 // радиус свечения в размерах частицы
	GlowIntensity  = 0.7
	GlowSaturation = 1.0
	GlowLightness  = 0.6
	GlowSpriteSize = 64

	MaxDeviceScale = 2.0 // потолок плотности пикселей

	// Терминальная поверхность: сколько логических пикселей в одной ячейке
	CellWidth  = 8
	CellHeight = 16

	HUDFontSize = 14.0
	HUDMargin   = 12.0
)

var (
	BackgroundColor = color.RGBA{10, 10, 18, 255} // фон только для оконного режима
	HUDTextColor    = color.RGBA{200, 230, 255, 200}
)
