// Package pricing resolves the selling price a given account sees. The tier
// is looked up once at login and carried in the session; render code only
// ever calls PriceFor, it never re-derives the tier from the account.
package pricing

import "github.com/Alas-3/syrincal-system/models"

// Price tiers. Standard is the walk-in vet price; clinic and distributor
// accounts get their own price columns when one has been set on the batch.
const (
	TierStandard    = "standard"
	TierClinic      = "clinic"
	TierDistributor = "distributor"
)

// PriceFor returns the unit price of a product for the given tier, falling
// back to the standard selling price when the batch carries no price for
// that tier.
func PriceFor(p models.Product, tier string) float64 {
	switch tier {
	case TierClinic:
		if p.ClinicPrice != nil {
			return *p.ClinicPrice
		}
	case TierDistributor:
		if p.DistributorPrice != nil {
			return *p.DistributorPrice
		}
	}
	return p.SellingPrice
}

// ValidTier reports whether the value names a known price tier
func ValidTier(tier string) bool {
	switch tier {
	case TierStandard, TierClinic, TierDistributor:
		return true
	}
	return false
}
