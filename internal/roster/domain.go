package roster

import "github.com/wingscafe/tracker/internal/shared"

// Customer is a loyalty-programme member.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// CustomerDraft is unparsed form input. LoyaltyPoints falls back to zero when
// blank or unparsable.
type CustomerDraft struct {
	Name          string           `json:"name" validate:"required"`
	Email         string           `json:"email" validate:"omitempty,email"`
	Phone         string           `json:"phone"`
	LoyaltyPoints shared.FormValue `json:"loyaltyPoints"`
}

// Tier is derived from loyalty points, never stored.
type Tier string

const (
	TierGold     Tier = "Gold"
	TierSilver   Tier = "Silver"
	TierStandard Tier = "Standard"
)

// Tier thresholds in points.
const (
	GoldPoints   = 100
	SilverPoints = 50
)

// Tiers lists tiers from highest to lowest.
func Tiers() []Tier {
	return []Tier{TierGold, TierSilver, TierStandard}
}

// TierFor maps a points balance to its tier.
func TierFor(points int) Tier {
	switch {
	case points >= GoldPoints:
		return TierGold
	case points >= SilverPoints:
		return TierSilver
	default:
		return TierStandard
	}
}

// TierOf returns the customer's tier.
func TierOf(c Customer) Tier {
	return TierFor(c.LoyaltyPoints)
}
