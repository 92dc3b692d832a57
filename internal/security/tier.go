package security

// Tier is the narrative stability band of a score.
type Tier int

const (
	ExtremelyUnstable Tier = iota
	HighlyUnstable
	SomewhatUnstable
	ModeratelySecure
	VerySecure
)

// Tier lower bounds. These are fixed and not configurable.
const (
	verySecureMin       = 80
	moderatelySecureMin = 60
	somewhatUnstableMin = 40
	highlyUnstableMin   = 20
)

// TierFor maps a score onto its tier.
func TierFor(score float64) Tier {
	switch {
	case score >= verySecureMin:
		return VerySecure
	case score >= moderatelySecureMin:
		return ModeratelySecure
	case score >= somewhatUnstableMin:
		return SomewhatUnstable
	case score >= highlyUnstableMin:
		return HighlyUnstable
	default:
		return ExtremelyUnstable
	}
}

func (t Tier) String() string {
	switch t {
	case VerySecure:
		return "very secure"
	case ModeratelySecure:
		return "moderately secure"
	case SomewhatUnstable:
		return "somewhat unstable"
	case HighlyUnstable:
		return "highly unstable"
	default:
		return "extremely unstable"
	}
}

// Narrative is the feedback line shown to the player.
func (t Tier) Narrative() string {
	switch t {
	case VerySecure:
		return "The coalition is very secure. Parties are ideologically aligned and likely to work together effectively."
	case ModeratelySecure:
		return "The coalition is moderately secure. Some ideological differences exist but parties can likely find common ground."
	case SomewhatUnstable:
		return "The coalition is somewhat unstable. Significant ideological differences may cause conflicts and disagreements."
	case HighlyUnstable:
		return "The coalition is highly unstable. Major ideological conflicts are likely to cause frequent disputes and potential collapse."
	default:
		return "The coalition is extremely unstable. Parties are fundamentally opposed and the coalition is likely to collapse soon."
	}
}
