// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go.
// Не потокобезопасна: принадлежит одному владельцу (системе следа).
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает равномерное число в [min, max). При min == max возвращает min.
func (s *PRNGService) Range(min, max float64) float64 {
	return Lerp(min, max, s.rng.Float64())
}

// Angle возвращает равномерный угол в [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}
