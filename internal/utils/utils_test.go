package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeStaysInBounds(t *testing.T) {
	s := NewPRNGService(42)
	for i := 0; i < 1000; i++ {
		v := s.Range(170, 270)
		assert.GreaterOrEqual(t, v, 170.0)
		assert.Less(t, v, 270.0)
	}
}

func TestRangeEmpty(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, 3.0, s.Range(3, 3))
}

func TestAngle(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		a := s.Angle()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2*math.Pi)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
}
