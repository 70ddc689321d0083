package handlers

import (
	"time"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/reports"
	"github.com/gofiber/fiber/v2"
)

// inventoryRow pairs a batch group with its expiry badge
type inventoryRow struct {
	reports.BatchGroup
	Status     reports.ExpiryStatus
	ExpiryText string
}

// InventoryOverview renders the grouped batch view with expiry badges.
// ?merge=1 collapses batches that share name, prices and dates into one
// row; the default keeps every batch separate.
func InventoryOverview(c *fiber.Ctx) error {
	db := database.GetDB()

	year := filterValue(c, "year")
	month := filterValue(c, "month")
	mode := reports.ExactBatches
	if c.Query("merge") == "1" {
		mode = reports.MergedBatches
	}

	var products []models.Product
	if err := db.Order("purchase_date DESC, name ASC").Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load products")
	}

	var sales []models.Sale
	db.Find(&sales)

	now := time.Now()
	groups := reports.GroupInventoryBatches(products, year, month, mode)

	rows := make([]inventoryRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, inventoryRow{
			BatchGroup: g,
			Status:     reports.ClassifyExpiration(g.ExpirationDate, now),
			ExpiryText: reports.ExpirationText(g.ExpirationDate, now),
		})
	}

	return render(c, "pages/inventory/overview", fiber.Map{
		"Title":         "Inventory",
		"Active":        "inventory",
		"Rows":          rows,
		"Summary":       reports.SummarizeInventory(products),
		"Merged":        mode == reports.MergedBatches,
		"Years":         reports.DistinctYears(products, sales),
		"Months":        reports.Months(),
		"SelectedYear":  year,
		"SelectedMonth": month,
	})
}
