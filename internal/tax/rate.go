// Package tax derives the national tax rate from the budget.
package tax

import (
	"math/rand/v2"

	"github.com/theirongolddev/parlsim/internal/budget"
)

const (
	MinRate = 10.0
	MaxRate = 60.0

	baseFactor     = 0.25
	deficitLean    = 1.0
	balancedLean   = 0.8
	perturbMin     = 0.95
	perturbStep    = 0.01
	perturbChoices = 11 // 0.95 .. 1.05
)

// LeanFactor is 1.0 for a deficit-permitting coalition and 0.8 otherwise.
func LeanFactor(rule budget.Rule) float64 {
	if rule == budget.Deficit {
		return deficitLean
	}
	return balancedLean
}

// Perturbation draws the random factor in [0.95, 1.05] in 0.01 steps.
func Perturbation(rng *rand.Rand) float64 {
	return perturbMin + float64(rng.IntN(perturbChoices))*perturbStep
}

// Rate computes the tax rate for an unclamped budget total. The result is
// always within [MinRate, MaxRate].
func Rate(total int, rule budget.Rule, rng *rand.Rand) float64 {
	return Compute(total, rule, Perturbation(rng))
}

// Compute is Rate with an explicit perturbation factor.
func Compute(total int, rule budget.Rule, factor float64) float64 {
	r := float64(total) * baseFactor * LeanFactor(rule) * factor
	if r < MinRate {
		return MinRate
	}
	if r > MaxRate {
		return MaxRate
	}
	return r
}
