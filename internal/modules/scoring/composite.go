package scoring

// Tier thresholds, inclusive lower bounds on the composite score.
const (
	tierStrongBuyMin = 85.0
	tierBuyMin       = 75.0
	tierHoldMin      = 65.0
	tierWatchMin     = 50.0
)

// TierFor maps a composite score to its recommendation tier.
func TierFor(score float64) Tier {
	switch {
	case score >= tierStrongBuyMin:
		return TierStrongBuy
	case score >= tierBuyMin:
		return TierBuy
	case score >= tierHoldMin:
		return TierHold
	case score >= tierWatchMin:
		return TierWatch
	default:
		return TierAvoid
	}
}

// Aggregate combines the five lens scores into a composite score and tier.
//
// The composite is a convex combination over the lenses that are scored:
// unscored lenses are excluded and the remaining weights renormalized to sum
// to 1.0, so missing data never reads as a zero score. The composite itself
// is unscored only when every lens is unscored.
//
// Pure and deterministic: the result does not depend on lens order, and
// identical inputs always produce identical output.
func Aggregate(profile LensProfile) CompositeResult {
	result := CompositeResult{Profile: profile, Tier: TierUnscored}

	var availableWeight float64
	for _, ls := range profile.Lenses {
		if !ls.Unscored() {
			availableWeight += ls.Weight
		}
	}
	if availableWeight == 0 {
		return result
	}

	var composite float64
	breakdown := make([]LensContribution, 0, len(profile.Lenses))
	for _, ls := range profile.Lenses {
		if ls.Unscored() {
			continue
		}
		effective := ls.Weight / availableWeight
		contribution := *ls.Score * effective
		composite += contribution
		breakdown = append(breakdown, LensContribution{
			Lens:            ls.Lens,
			Score:           *ls.Score,
			Weight:          ls.Weight,
			EffectiveWeight: effective,
			Contribution:    contribution,
		})
	}

	result.Score = &composite
	result.Tier = TierFor(composite)
	result.Breakdown = breakdown
	return result
}
