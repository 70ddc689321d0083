package handlers

import (
	"sort"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/reports"
	"github.com/gofiber/fiber/v2"
)

// ReportsOverview renders the sales performance table plus the period
// summary cards. Year, month, client and product filters compose; each
// defaults to "all".
func ReportsOverview(c *fiber.Ctx) error {
	db := database.GetDB()

	year := filterValue(c, "year")
	month := filterValue(c, "month")
	client := filterValue(c, "client")
	product := filterValue(c, "product")

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load products")
	}

	var sales []models.Sale
	if err := db.Preload("Product").Order("sale_date ASC").Find(&sales).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load sales")
	}

	rows := reports.SalesPerformance(sales, year, month, client, product)

	var totals reports.PerformanceRow
	for _, r := range rows {
		totals.TotalSales += r.TotalSales
		totals.TotalRevenue += r.TotalRevenue
		totals.TotalCost += r.TotalCost
		totals.TotalProfit += r.TotalProfit
	}

	return render(c, "pages/reports/overview", fiber.Map{
		"Title":           "Reports",
		"Active":          "reports",
		"Rows":            rows,
		"Totals":          totals,
		"Period":          reports.SummarizeMonth(sales, year, month),
		"Inventory":       reports.SummarizeInventory(products),
		"Years":           reports.DistinctYears(products, sales),
		"Months":          reports.Months(),
		"Clients":         distinctClients(sales),
		"ProductNames":    distinctProductNames(sales),
		"SelectedYear":    year,
		"SelectedMonth":   month,
		"SelectedClient":  client,
		"SelectedProduct": product,
	})
}

// distinctClients collects client names appearing in sales, sorted for
// the filter dropdown
func distinctClients(sales []models.Sale) []string {
	seen := make(map[string]bool)
	for _, s := range sales {
		if s.ClientName != "" {
			seen[s.ClientName] = true
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// distinctProductNames collects product names appearing in sales via the
// joined product row. Sales whose product was deleted contribute nothing.
func distinctProductNames(sales []models.Sale) []string {
	seen := make(map[string]bool)
	for _, s := range sales {
		if s.Product.Name != "" {
			seen[s.Product.Name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
