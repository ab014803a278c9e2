package achievements

// Tier is the cosmetic grouping of an achievement. It has no effect on
// unlock logic.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}
