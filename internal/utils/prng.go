// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService: обертка над генератором случайных чисел Go. Один экземпляр
// живёт всё время симуляции и засевается один раз.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually used, so a run can be replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance draws one sample and reports whether it is at most p.
func (s *PRNGService) Chance(p float64) bool {
	return s.Float64() <= p
}

// Sign returns +1 or -1 with equal probability.
func (s *PRNGService) Sign() int {
	if s.Float64() > 0.5 {
		return 1
	}
	return -1
}
