package pricing

import (
	"testing"

	"github.com/Alas-3/syrincal-system/models"
	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	clinic := 90.0
	distributor := 80.0
	p := models.Product{
		Name:             "Premium Vaccine Vial",
		SellingPrice:     100,
		ClinicPrice:      &clinic,
		DistributorPrice: &distributor,
	}

	assert.Equal(t, 100.0, PriceFor(p, TierStandard))
	assert.Equal(t, 90.0, PriceFor(p, TierClinic))
	assert.Equal(t, 80.0, PriceFor(p, TierDistributor))
}

func TestPriceFor_FallsBackToStandard(t *testing.T) {
	p := models.Product{Name: "Sterile Gloves", SellingPrice: 8}

	assert.Equal(t, 8.0, PriceFor(p, TierClinic))
	assert.Equal(t, 8.0, PriceFor(p, TierDistributor))
	assert.Equal(t, 8.0, PriceFor(p, "nonsense"))
}

func TestValidTier(t *testing.T) {
	assert.True(t, ValidTier(TierStandard))
	assert.True(t, ValidTier(TierClinic))
	assert.True(t, ValidTier(TierDistributor))
	assert.False(t, ValidTier(""))
	assert.False(t, ValidTier("wholesale"))
}
