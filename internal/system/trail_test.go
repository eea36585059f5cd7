package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambient-trail/internal/component"
	"ambient-trail/internal/config"
)

func newTestTrail() *TrailSystem {
	cfg := config.DefaultTrail()
	cfg.Seed = 1
	return NewTrailSystem(cfg)
}

func TestPointerMoveSpawnsBatch(t *testing.T) {
	s := newTestTrail()
	s.PointerMoved(100, 200)

	require.Equal(t, config.SpawnBatch, s.Count())
	ptr, ok := s.Pointer()
	require.True(t, ok)
	assert.Equal(t, component.Point{X: 100, Y: 200}, ptr)
}

func TestSpawnParametersWithinBounds(t *testing.T) {
	s := newTestTrail()
	for i := 0; i < 50; i++ {
		s.PointerMoved(float64(i), float64(i))
	}
	cfg := s.Config()
	s.Each(func(p *component.Particle, opacity float64) {
		speed := math.Hypot(p.VX, p.VY)
		assert.GreaterOrEqual(t, speed, cfg.SpeedMin-1e-9)
		assert.Less(t, speed, cfg.SpeedMax)
		assert.GreaterOrEqual(t, p.MaxAge, cfg.LifeMin)
		assert.Less(t, p.MaxAge, cfg.LifeMax)
		assert.GreaterOrEqual(t, p.Size, cfg.SizeMin)
		assert.Less(t, p.Size, cfg.SizeMax)
		assert.GreaterOrEqual(t, p.Hue, cfg.HueMin)
		assert.Less(t, p.Hue, cfg.HueMax)
		assert.Equal(t, 0.0, p.Age)
		assert.Equal(t, 1.0, opacity)
	})
}

func TestRapidMovesThenExpiry(t *testing.T) {
	s := newTestTrail()
	for i := 0; i < 10; i++ {
		s.PointerMoved(float64(10*i), 50)
	}
	require.Equal(t, 40, s.Count())

	for i := 0; i < int(config.LifeMax)+1; i++ {
		s.Update()
	}
	assert.Equal(t, 0, s.Count())
}

func TestAgeNonDecreasingAndRemovalAtMaxAge(t *testing.T) {
	s := newTestTrail()
	s.PointerMoved(0, 0)

	ages := map[float64]float64{} // MaxAge -> last Age
	for frame := 1; frame <= int(config.LifeMax)+1; frame++ {
		s.Update()
		s.Each(func(p *component.Particle, opacity float64) {
			last, seen := ages[p.MaxAge]
			if seen {
				assert.GreaterOrEqual(t, p.Age, last)
			}
			ages[p.MaxAge] = p.Age
			assert.Less(t, p.Age, p.MaxAge, "live particle past its lifetime")
			assert.Greater(t, opacity, 0.0)
			assert.LessOrEqual(t, opacity, 1.0)
		})
	}
	assert.Equal(t, 0, s.Count())
}

func TestOpacityNonIncreasingAcrossFrames(t *testing.T) {
	s := newTestTrail()
	s.PointerMoved(0, 0)

	prev := map[float64]float64{}
	for frame := 0; frame < int(config.LifeMax); frame++ {
		s.Update()
		s.Each(func(p *component.Particle, opacity float64) {
			if o, ok := prev[p.MaxAge]; ok {
				assert.LessOrEqual(t, opacity, o)
			}
			prev[p.MaxAge] = opacity
		})
	}
}

func TestParticlesDriftTowardPointer(t *testing.T) {
	cfg := config.DefaultTrail()
	cfg.Seed = 3
	cfg.SpeedMin, cfg.SpeedMax = 0, 0
	s := NewTrailSystem(cfg)

	s.PointerMoved(0, 0)
	s.pointer = &component.Point{X: 100, Y: 0}
	for i := 0; i < 10; i++ {
		s.Update()
	}
	s.Each(func(p *component.Particle, _ float64) {
		assert.Greater(t, p.X, 0.0)
		assert.InDelta(t, 0.0, p.Y, 1e-9)
	})
}

func TestTuneKeepsExistingParticles(t *testing.T) {
	s := newTestTrail()
	s.PointerMoved(1, 1)

	cfg := s.Config()
	cfg.SpawnBatch = 10
	s.Tune(cfg)
	assert.Equal(t, config.SpawnBatch, s.Count())

	s.PointerMoved(2, 2)
	assert.Equal(t, config.SpawnBatch+10, s.Count())
}

func TestReset(t *testing.T) {
	s := newTestTrail()
	s.PointerMoved(1, 1)
	s.Reset()

	assert.Equal(t, 0, s.Count())
	_, ok := s.Pointer()
	assert.False(t, ok)
}
