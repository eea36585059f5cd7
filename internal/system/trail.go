// internal/system/trail.go
package system

import (
	"math"

	"ambient-trail/internal/component"
	"ambient-trail/internal/config"
	"ambient-trail/internal/utils"
)

// TrailSystem владеет активными частицами следа и последней позицией указателя.
// Все методы вызываются из одного потока (цикла кадров).
type TrailSystem struct {
	cfg       config.TrailConfig
	rng       *utils.PRNGService
	particles []component.Particle
	pointer   *component.Point
}

// NewTrailSystem создает пустой след с заданными параметрами.
func NewTrailSystem(cfg config.TrailConfig) *TrailSystem {
	return &TrailSystem{
		cfg:       cfg,
		rng:       utils.NewPRNGService(cfg.Seed),
		particles: make([]component.Particle, 0, cfg.SpawnBatch*int(math.Ceil(cfg.LifeMax))),
	}
}

// PointerMoved запоминает указатель и рождает пачку частиц в этой точке.
func (s *TrailSystem) PointerMoved(x, y float64) {
	s.pointer = &component.Point{X: x, Y: y}
	for i := 0; i < s.cfg.SpawnBatch; i++ {
		angle := s.rng.Angle()
		speed := s.rng.Range(s.cfg.SpeedMin, s.cfg.SpeedMax)
		s.particles = append(s.particles, component.Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			MaxAge: s.rng.Range(s.cfg.LifeMin, s.cfg.LifeMax),
			Size:   s.rng.Range(s.cfg.SizeMin, s.cfg.SizeMax),
			Hue:    s.rng.Range(s.cfg.HueMin, s.cfg.HueMax),
		})
	}
}

// Update продвигает все частицы на один кадр и удаляет погасшие.
// Обход с конца: на место удаленной встает последняя, уже обработанная частица.
func (s *TrailSystem) Update() {
	for i := len(s.particles) - 1; i >= 0; i-- {
		p := &s.particles[i]
		p.Step(s.pointer, s.cfg.Attraction, s.cfg.Damping)
		if p.Expired() {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles = s.particles[:last]
		}
	}
}

// Each вызывает fn для каждой живой частицы вместе с ее прозрачностью.
// fn не должна сохранять указатель после возврата. Reset из fn допустим:
// обход завершится по старому срезу.
func (s *TrailSystem) Each(fn func(p *component.Particle, opacity float64)) {
	ps := s.particles
	for i := range ps {
		p := &ps[i]
		fn(p, p.Opacity())
	}
}

// Tune заменяет параметры для будущих рождений и кадров.
// Уже живущие частицы сохраняют свои MaxAge, Size и Hue.
func (s *TrailSystem) Tune(cfg config.TrailConfig) {
	seed := s.cfg.Seed
	s.cfg = cfg
	if cfg.Seed != seed && cfg.Seed != 0 {
		s.rng = utils.NewPRNGService(cfg.Seed)
	}
}

// Config возвращает текущие параметры.
func (s *TrailSystem) Config() config.TrailConfig {
	return s.cfg
}

// Pointer возвращает последнюю позицию указателя.
func (s *TrailSystem) Pointer() (component.Point, bool) {
	if s.pointer == nil {
		return component.Point{}, false
	}
	return *s.pointer, true
}

// Count возвращает число живых частиц.
func (s *TrailSystem) Count() int {
	return len(s.particles)
}

// Reset удаляет все частицы и забывает указатель.
func (s *TrailSystem) Reset() {
	s.particles = s.particles[:0]
	s.pointer = nil
}
