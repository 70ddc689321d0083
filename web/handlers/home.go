package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/reports"
	"github.com/gofiber/fiber/v2"
)

// expiringRow is one line of the dashboard's attention list
type expiringRow struct {
	Name           string
	Remaining      int
	ExpirationDate *time.Time
	Status         reports.ExpiryStatus
	Text           string
}

// HomePage renders the back-office dashboard: stock and value totals,
// the current month's sales summary, and batches needing attention.
func HomePage(c *fiber.Ctx) error {
	db := database.GetDB()

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load products")
	}

	var sales []models.Sale
	if err := db.Preload("Product").Find(&sales).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load sales")
	}

	now := time.Now()
	year := strconv.Itoa(now.Year())
	month := strconv.Itoa(int(now.Month()))

	inventory := reports.SummarizeInventory(products)
	thisMonth := reports.SummarizeMonth(sales, year, month)

	// Batches already expired or inside the critical window, soonest first
	var expiring []expiringRow
	for _, p := range products {
		if p.Remaining == 0 {
			continue
		}
		status := reports.ClassifyExpiration(p.ExpirationDate, now)
		if status != reports.ExpiryCritical {
			continue
		}
		expiring = append(expiring, expiringRow{
			Name:           p.Name,
			Remaining:      p.Remaining,
			ExpirationDate: p.ExpirationDate,
			Status:         status,
			Text:           reports.ExpirationText(p.ExpirationDate, now),
		})
	}
	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].ExpirationDate.Before(*expiring[j].ExpirationDate)
	})

	return render(c, "pages/home", fiber.Map{
		"Title":      "Dashboard",
		"Active":     "home",
		"Inventory":  inventory,
		"ThisMonth":  thisMonth,
		"MonthLabel": now.Format("January 2006"),
		"Expiring":   expiring,
	})
}
