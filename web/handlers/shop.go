package handlers

import (
	"strings"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/pricing"
	"github.com/gofiber/fiber/v2"
)

// shopItem is one storefront card with the viewer's tier price applied
type shopItem struct {
	Name      string
	Price     float64
	InStock   bool
	Remaining int
}

// Storefront renders the client-facing catalog. Prices come from the
// viewer's price tier, and batches of the same product collapse into a
// single card with combined stock.
func Storefront(c *fiber.Ctx) error {
	db := database.GetDB()

	tier, _ := c.Locals("PriceTier").(string)
	if !pricing.ValidTier(tier) {
		tier = pricing.TierStandard
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("q")))

	var products []models.Product
	if err := db.Order("name ASC, purchase_date ASC").Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load catalog")
	}

	// One card per product name; price comes from the first batch seen
	index := make(map[string]int)
	items := make([]shopItem, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}

		i, ok := index[p.Name]
		if !ok {
			index[p.Name] = len(items)
			items = append(items, shopItem{
				Name:  p.Name,
				Price: pricing.PriceFor(p, tier),
			})
			i = len(items) - 1
		}

		items[i].Remaining += p.Remaining
		items[i].InStock = items[i].Remaining > 0
	}

	return render(c, "pages/shop", fiber.Map{
		"Title":  "Shop",
		"Active": "shop",
		"Items":  items,
		"Search": c.Query("q"),
		"Tier":   tier,
	})
}
