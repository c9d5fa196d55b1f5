package pager

import (
	"math"

	"github.com/samber/lo"
)

// modulo is a true mathematical modulo whose result takes the sign of max.
// A zero max yields zero instead of NaN.
func modulo(val, max float64) float64 {
	if max == 0 {
		return 0
	}
	return math.Mod(math.Mod(val, max)+max, max)
}

// moduloIndex wraps an index into [0, n)
func moduloIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// clamp mirrors min(max(lo, val), hi)
func clamp(val, low, high float64) float64 {
	return math.Min(math.Max(low, val), high)
}

func clampIndex(i, low, high int) int {
	return min(max(low, i), high)
}

func sum(values []float64) float64 {
	return lo.Sum(values)
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Max(values)
}
