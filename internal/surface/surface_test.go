package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotReadyBeforeResize(t *testing.T) {
	s := New(2)
	assert.False(t, s.Ready())
	w, h := s.Backing()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestBackingFollowsScale(t *testing.T) {
	s := New(2)
	assert.True(t, s.Resize(801, 600, 1.5))
	assert.True(t, s.Ready())

	w, h := s.Backing()
	assert.Equal(t, 1201, w)
	assert.Equal(t, 900, h)
}

func TestScaleIsCapped(t *testing.T) {
	s := New(2)
	s.Resize(100, 100, 3)
	assert.Equal(t, 2.0, s.Scale())
	w, h := s.Backing()
	assert.Equal(t, 200, w)
	assert.Equal(t, 200, h)
}

func TestClampScale(t *testing.T) {
	s := New(2)
	assert.Equal(t, 1.0, s.ClampScale(0.5))
	assert.Equal(t, 1.0, s.ClampScale(0))
	assert.Equal(t, 1.0, s.ClampScale(math.NaN()))
	assert.Equal(t, 1.25, s.ClampScale(1.25))
	assert.Equal(t, 2.0, s.ClampScale(math.Inf(1)))
}

func TestResizeReportsChange(t *testing.T) {
	s := New(2)
	assert.True(t, s.Resize(10, 10, 1))
	assert.False(t, s.Resize(10, 10, 1))
	assert.False(t, s.Resize(10, 10, 0.8), "clamped to the same scale")
	assert.True(t, s.Resize(10, 10, 2))
}

func TestToLogical(t *testing.T) {
	s := New(2)
	s.Resize(100, 100, 2)
	x, y := s.ToLogical(50, 20)
	assert.Equal(t, 25.0, x)
	assert.Equal(t, 10.0, y)
}

func TestNonFiniteCapFallsBackToOne(t *testing.T) {
	for _, capScale := range []float64{math.Inf(1), math.NaN(), 0.5} {
		s := New(capScale)
		assert.Equal(t, 1.0, s.MaxScale)
		s.Resize(100, 50, 2)
		w, h := s.Backing()
		assert.Equal(t, 100, w)
		assert.Equal(t, 50, h)
	}
}
