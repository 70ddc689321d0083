// Package reports derives the inventory and sales views shown on the
// dashboard from in-memory record slices. Every function here is a pure
// transform: no database access, no clock reads, deterministic for a given
// input and reference time. Handlers fetch whole tables and hand them over;
// this package does the GROUP BY work the original spreadsheets used to.
package reports

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Alas-3/syrincal-system/models"
	"github.com/google/uuid"
)

// FilterAll is the sentinel filter value meaning "no constraint on this axis"
const FilterAll = "all"

// GroupingMode selects how inventory batches are keyed
type GroupingMode int

const (
	// ExactBatches keeps the record id in the grouping key, so rows never
	// actually merge and every batch renders as its own group. This is how
	// the reports have always behaved and what the operators reconcile
	// against, so it stays the default.
	ExactBatches GroupingMode = iota
	// MergedBatches drops the id from the key: batches sharing name, prices,
	// purchase date and expiration date collapse into one row.
	MergedBatches
)

// BatchLine is one purchase batch nested inside a group row
type BatchLine struct {
	ID             uuid.UUID  `json:"id"`
	PurchaseDate   time.Time  `json:"purchase_date"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Quantity       int        `json:"quantity"`
	Supplier       string     `json:"supplier,omitempty"`
}

// BatchGroup is one row of the inventory overview
type BatchGroup struct {
	Name             string      `json:"name"`
	AcquisitionPrice float64     `json:"acquisition_price"`
	SellingPrice     float64     `json:"selling_price"`
	ExpirationDate   *time.Time  `json:"expiration_date,omitempty"`
	TotalStock       int         `json:"total_stock"`
	Batches          []BatchLine `json:"batches"`
}

// PerformanceRow aggregates sales sharing a product name and sale price
type PerformanceRow struct {
	Name             string  `json:"name"`
	SellingPrice     float64 `json:"selling_price"`
	AcquisitionPrice float64 `json:"acquisition_price"`
	TotalSales       int     `json:"total_sales"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCost        float64 `json:"total_cost"`
	TotalProfit      float64 `json:"total_profit"`
}

// InventorySummary totals current stock across all batches
type InventorySummary struct {
	TotalStock     int     `json:"total_stock"`
	InventoryValue float64 `json:"inventory_value"`
}

// MonthlySummary totals sales activity for one period
type MonthlySummary struct {
	ItemsSold   int     `json:"items_sold"`
	GrossIncome float64 `json:"gross_income"`
	Profit      float64 `json:"profit"`
}

// GroupInventoryBatches filters products to the given purchase year/month
// (FilterAll on either axis lifts that constraint) and groups them into
// display rows. Group insertion order follows first appearance in the input.
func GroupInventoryBatches(products []models.Product, year, month string, mode GroupingMode) []BatchGroup {
	groups := make(map[string]*BatchGroup)
	order := make([]string, 0, len(products))

	for _, p := range products {
		if !MatchesPeriod(p.PurchaseDate, year, month) {
			continue
		}

		key := batchKey(p, mode)
		g, ok := groups[key]
		if !ok {
			g = &BatchGroup{
				Name:             p.Name,
				AcquisitionPrice: p.AcquisitionPrice,
				SellingPrice:     p.SellingPrice,
				ExpirationDate:   p.ExpirationDate,
			}
			groups[key] = g
			order = append(order, key)
		}

		g.TotalStock += p.Remaining
		g.Batches = append(g.Batches, BatchLine{
			ID:             p.ID,
			PurchaseDate:   p.PurchaseDate,
			ExpirationDate: p.ExpirationDate,
			Quantity:       p.Remaining,
			Supplier:       p.SupplierName,
		})
	}

	result := make([]BatchGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	return result
}

// SalesPerformance filters sales by period, client name and product name
// (FilterAll lifts a constraint; name matches are exact) and groups the rest
// by (product name, sale price). Cost and profit use the acquisition price
// from the sale's joined product row, not a fresh lookup: retroactive edits
// to a product's cost rewrite history, and the reports have always read that
// way. Losses come out negative and are never clamped.
func SalesPerformance(sales []models.Sale, year, month, client, product string) []PerformanceRow {
	rows := make(map[string]*PerformanceRow)
	order := make([]string, 0, len(sales))

	for _, s := range sales {
		if !MatchesPeriod(s.SaleDate, year, month) {
			continue
		}
		if client != FilterAll && s.ClientName != client {
			continue
		}
		if product != FilterAll && s.Product.Name != product {
			continue
		}

		key := s.Product.Name + "|" + formatPrice(s.SalePrice)
		r, ok := rows[key]
		if !ok {
			r = &PerformanceRow{
				Name:             s.Product.Name,
				SellingPrice:     s.SalePrice,
				AcquisitionPrice: s.Product.AcquisitionPrice,
			}
			rows[key] = r
			order = append(order, key)
		}

		qty := float64(s.Quantity)
		r.TotalSales += s.Quantity
		r.TotalRevenue += qty * s.SalePrice
		r.TotalCost += qty * s.Product.AcquisitionPrice
		r.TotalProfit += qty * (s.SalePrice - s.Product.AcquisitionPrice)
	}

	result := make([]PerformanceRow, 0, len(order))
	for _, key := range order {
		result = append(result, *rows[key])
	}
	return result
}

// SummarizeInventory totals remaining stock and its value at selling price
func SummarizeInventory(products []models.Product) InventorySummary {
	var summary InventorySummary
	for _, p := range products {
		summary.TotalStock += p.Remaining
		summary.InventoryValue += p.SellingPrice * float64(p.Remaining)
	}
	return summary
}

// SummarizeMonth totals quantity sold, gross income and profit over the
// sales whose sale date falls in the given year/month
func SummarizeMonth(sales []models.Sale, year, month string) MonthlySummary {
	var summary MonthlySummary
	for _, s := range sales {
		if !MatchesPeriod(s.SaleDate, year, month) {
			continue
		}
		qty := float64(s.Quantity)
		summary.ItemsSold += s.Quantity
		summary.GrossIncome += qty * s.SalePrice
		summary.Profit += qty * (s.SalePrice - s.Product.AcquisitionPrice)
	}
	return summary
}

// DistinctYears collects every calendar year appearing in purchase or sale
// dates, sorted descending for the filter dropdowns
func DistinctYears(products []models.Product, sales []models.Sale) []int {
	seen := make(map[int]bool)
	for _, p := range products {
		if !p.PurchaseDate.IsZero() {
			seen[p.PurchaseDate.Year()] = true
		}
	}
	for _, s := range sales {
		if !s.SaleDate.IsZero() {
			seen[s.SaleDate.Year()] = true
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Months returns the literal month numbers 1 through 12
func Months() []int {
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

// MatchesPeriod reports whether a date falls in the filtered year/month.
// Zero dates are excluded from any date-bounded view rather than matched;
// form inputs are validated before they reach the engine, so a zero date
// here means a record predating the date columns.
func MatchesPeriod(date time.Time, year, month string) bool {
	if year == FilterAll && month == FilterAll {
		return true
	}
	if date.IsZero() {
		return false
	}
	if year != FilterAll {
		y, err := strconv.Atoi(year)
		if err != nil || date.Year() != y {
			return false
		}
	}
	if month != FilterAll {
		m, err := strconv.Atoi(month)
		if err != nil || int(date.Month()) != m {
			return false
		}
	}
	return true
}

func batchKey(p models.Product, mode GroupingMode) string {
	key := fmt.Sprintf("%s|%s|%s|%s|%s",
		p.Name,
		formatPrice(p.AcquisitionPrice),
		formatPrice(p.SellingPrice),
		p.PurchaseDate.Format("2006-01-02"),
		formatDate(p.ExpirationDate),
	)
	if mode == ExactBatches {
		key = p.ID.String() + "|" + key
	}
	return key
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
