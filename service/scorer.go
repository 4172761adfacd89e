package service

import (
	"math"
	"strings"

	"scheme-finder/catalog"
)

// AdditiveScore is the bonus-based ranking formula: base 50, plus bonuses for
// purpose match, age proximity and income headroom, clamped to [0,100]. It
// orders already-eligible schemes and never filters.
func AdditiveScore(s catalog.Scheme, c Criteria) float64 {
	score := 50.0

	if c.Purpose != "" && purposeEligible(s, c) {
		score += 30
	}

	if c.Age != nil && s.MinAge != nil && s.MaxAge != nil {
		midpoint := float64(*s.MinAge+*s.MaxAge) / 2
		distance := math.Abs(float64(*c.Age) - midpoint)
		switch {
		case distance <= 5:
			score += 15
		case distance <= 15:
			score += 10
		case distance <= 25:
			score += 5
		}
	}

	if c.Income != nil && s.MinIncome != nil && *s.MinIncome > 0 {
		if float64(*c.Income)/float64(*s.MinIncome) >= 1.5 {
			score += 5
		}
	}

	return clampScore(score)
}

// PenaltyScore is the alternate ranking formula used by the quick-filter
// flow: base 100, +20 for an exact case-insensitive category match, minus a
// fractional penalty proportional to the distance from the scheme's age-range
// midpoint (defaults 18 and 70 for missing bounds).
func PenaltyScore(s catalog.Scheme, c Criteria) float64 {
	score := 100.0

	if c.Purpose != "" && strings.EqualFold(s.Category, c.Purpose) {
		score += 20
	}

	if c.Age != nil {
		minAge, maxAge := 18, 70
		if s.MinAge != nil {
			minAge = *s.MinAge
		}
		if s.MaxAge != nil {
			maxAge = *s.MaxAge
		}
		midpoint := float64(minAge+maxAge) / 2
		score -= math.Abs(float64(*c.Age)-midpoint) / 25 * 10
	}

	return clampScore(score)
}

func clampScore(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}
