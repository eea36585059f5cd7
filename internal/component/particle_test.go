package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpacityFadesWithAge(t *testing.T) {
	p := &Particle{MaxAge: 60}
	prev := p.Opacity()
	assert.Equal(t, 1.0, prev)

	for i := 0; i < 80; i++ {
		p.Step(nil, 0, 0.98)
		o := p.Opacity()
		assert.LessOrEqual(t, o, prev)
		assert.GreaterOrEqual(t, o, 0.0)
		assert.LessOrEqual(t, o, 1.0)
		prev = o
	}
	assert.Equal(t, 0.0, prev)
}

func TestExpiredExactlyAtMaxAge(t *testing.T) {
	p := &Particle{MaxAge: 3}
	p.Step(nil, 0, 1)
	p.Step(nil, 0, 1)
	assert.False(t, p.Expired())
	p.Step(nil, 0, 1)
	assert.True(t, p.Expired())
}

func TestFractionalMaxAge(t *testing.T) {
	p := &Particle{MaxAge: 2.5}
	p.Step(nil, 0, 1)
	p.Step(nil, 0, 1)
	assert.False(t, p.Expired())
	p.Step(nil, 0, 1)
	assert.True(t, p.Expired())
}

func TestZeroMaxAgeIsExpired(t *testing.T) {
	p := &Particle{}
	assert.Equal(t, 0.0, p.Opacity())
	assert.True(t, p.Expired())
}

func TestNaNLifetimeIsExpired(t *testing.T) {
	p := Particle{MaxAge: math.NaN()}
	assert.Equal(t, 0.0, p.Opacity())
	assert.True(t, p.Expired())
}

func TestStepWithoutPointerOnlyDamps(t *testing.T) {
	p := &Particle{X: 10, Y: 10, VX: 1, VY: -2, MaxAge: 60}
	p.Step(nil, 0.5, 0.5)

	assert.Equal(t, 1.0, p.Age)
	assert.InDelta(t, 0.5, p.VX, 1e-12)
	assert.InDelta(t, -1.0, p.VY, 1e-12)
	assert.InDelta(t, 10.5, p.X, 1e-12)
	assert.InDelta(t, 9.0, p.Y, 1e-12)
}

func TestStepAttractsTowardPointer(t *testing.T) {
	p := &Particle{X: 0, Y: 0, MaxAge: 60}
	ptr := &Point{X: 100, Y: -100}
	p.Step(ptr, 0.001, 1)

	assert.InDelta(t, 0.1, p.VX, 1e-12)
	assert.InDelta(t, -0.1, p.VY, 1e-12)
	assert.Greater(t, p.X, 0.0)
	assert.Less(t, p.Y, 0.0)
}
