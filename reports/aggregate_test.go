package reports

import (
	"testing"
	"time"

	"github.com/Alas-3/syrincal-system/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func batch(name string, acq, sell float64, remaining int, purchased string) models.Product {
	return models.Product{
		ID:               uuid.New(),
		Name:             name,
		SellingPrice:     sell,
		AcquisitionPrice: acq,
		PurchaseQty:      remaining,
		Remaining:        remaining,
		PurchaseDate:     date(purchased),
	}
}

func sale(p models.Product, client string, qty int, price float64, soldOn string) models.Sale {
	return models.Sale{
		ID:         uuid.New(),
		ProductID:  p.ID,
		ClientName: client,
		Quantity:   qty,
		SalePrice:  price,
		SaleDate:   date(soldOn),
		Product:    p,
	}
}

func TestSummarizeInventory(t *testing.T) {
	products := []models.Product{
		batch("Premium Vaccine Vial", 60, 100, 10, "2024-01-05"),
		batch("Precision Syringe Pack", 5, 9.5, 40, "2024-02-01"),
	}

	summary := SummarizeInventory(products)
	assert.Equal(t, 50, summary.TotalStock)
	assert.InDelta(t, 10*100+40*9.5, summary.InventoryValue, 0.001)
}

func TestSummarizeInventory_SingleBatchValue(t *testing.T) {
	p := batch("Antibiotic Solution", 12, 24.99, 7, "2024-03-01")
	summary := SummarizeInventory([]models.Product{p})
	assert.InDelta(t, 7*24.99, summary.InventoryValue, 0.001)
}

func TestSummarizeMonth_FiltersPeriod(t *testing.T) {
	p := batch("Premium Vaccine Vial", 60, 100, 10, "2024-01-05")
	sales := []models.Sale{
		sale(p, "Happy Paws Clinic", 2, 100, "2024-01-10"),
		sale(p, "Happy Paws Clinic", 5, 100, "2024-02-10"), // outside the period
		sale(p, "Vetcare Center", 3, 95, "2024-01-22"),
	}

	summary := SummarizeMonth(sales, "2024", "1")
	assert.Equal(t, 5, summary.ItemsSold)
	assert.InDelta(t, 2*100+3*95, summary.GrossIncome, 0.001)
	assert.InDelta(t, 2*(100-60)+3*(95-60), summary.Profit, 0.001)
}

func TestSummarizeMonth_ZeroDateExcluded(t *testing.T) {
	p := batch("Premium Vaccine Vial", 60, 100, 10, "2024-01-05")
	undated := sale(p, "Happy Paws Clinic", 2, 100, "2024-01-10")
	undated.SaleDate = time.Time{}

	summary := SummarizeMonth([]models.Sale{undated}, "2024", "1")
	assert.Zero(t, summary.ItemsSold)
}

func TestGroupInventoryBatches_ExactModeNeverMerges(t *testing.T) {
	// Two batches identical in every field except the record id.
	a := batch("Sterile Gloves", 4, 8, 20, "2024-03-15")
	b := batch("Sterile Gloves", 4, 8, 30, "2024-03-15")

	groups := GroupInventoryBatches([]models.Product{a, b}, FilterAll, FilterAll, ExactBatches)
	require.Len(t, groups, 2)
	assert.Equal(t, 20, groups[0].TotalStock)
	assert.Equal(t, 30, groups[1].TotalStock)
	require.Len(t, groups[0].Batches, 1)
	assert.Equal(t, a.ID, groups[0].Batches[0].ID)
}

func TestGroupInventoryBatches_MergedMode(t *testing.T) {
	a := batch("Sterile Gloves", 4, 8, 20, "2024-03-15")
	b := batch("Sterile Gloves", 4, 8, 30, "2024-03-15")
	c := batch("Sterile Gloves", 4.5, 8, 10, "2024-03-15") // different cost, own group

	groups := GroupInventoryBatches([]models.Product{a, b, c}, FilterAll, FilterAll, MergedBatches)
	require.Len(t, groups, 2)
	assert.Equal(t, 50, groups[0].TotalStock)
	require.Len(t, groups[0].Batches, 2)
	assert.Equal(t, 10, groups[1].TotalStock)
}

func TestGroupInventoryBatches_PeriodFilter(t *testing.T) {
	january := batch("Dental Kit", 15, 30, 5, "2024-01-20")
	march := batch("Dental Kit", 15, 30, 8, "2024-03-02")
	lastYear := batch("Dental Kit", 15, 30, 2, "2023-03-10")

	products := []models.Product{january, march, lastYear}

	groups := GroupInventoryBatches(products, "2024", "3", ExactBatches)
	require.Len(t, groups, 1)
	assert.Equal(t, 8, groups[0].TotalStock)

	// Sentinel month: whole year
	groups = GroupInventoryBatches(products, "2024", FilterAll, ExactBatches)
	assert.Len(t, groups, 2)

	// Sentinel both: everything
	groups = GroupInventoryBatches(products, FilterAll, FilterAll, ExactBatches)
	assert.Len(t, groups, 3)
}

func TestGroupInventoryBatches_Idempotent(t *testing.T) {
	products := []models.Product{
		batch("Dental Kit", 15, 30, 5, "2024-01-20"),
		batch("Sterile Gloves", 4, 8, 20, "2024-01-15"),
	}

	first := GroupInventoryBatches(products, "2024", "1", ExactBatches)
	second := GroupInventoryBatches(products, "2024", "1", ExactBatches)
	assert.Equal(t, first, second)
}

func TestSalesPerformance_GroupsByNameAndPrice(t *testing.T) {
	p := batch("Premium Vaccine Vial", 60, 100, 50, "2024-01-05")
	sales := []models.Sale{
		sale(p, "Happy Paws Clinic", 2, 100, "2024-01-10"),
		sale(p, "Vetcare Center", 3, 100, "2024-01-12"),
		sale(p, "Vetcare Center", 1, 90, "2024-01-15"), // discounted, own row
	}

	rows := SalesPerformance(sales, "2024", "1", FilterAll, FilterAll)
	require.Len(t, rows, 2)

	assert.Equal(t, "Premium Vaccine Vial", rows[0].Name)
	assert.Equal(t, 100.0, rows[0].SellingPrice)
	assert.Equal(t, 5, rows[0].TotalSales)
	assert.InDelta(t, 500, rows[0].TotalRevenue, 0.001)
	assert.InDelta(t, 300, rows[0].TotalCost, 0.001)
	assert.InDelta(t, 200, rows[0].TotalProfit, 0.001)

	assert.Equal(t, 90.0, rows[1].SellingPrice)
	assert.Equal(t, 1, rows[1].TotalSales)
}

func TestSalesPerformance_ClientAndProductFilters(t *testing.T) {
	vaccine := batch("Premium Vaccine Vial", 60, 100, 50, "2024-01-05")
	gloves := batch("Sterile Gloves", 4, 8, 100, "2024-01-05")
	sales := []models.Sale{
		sale(vaccine, "Happy Paws Clinic", 2, 100, "2024-01-10"),
		sale(gloves, "Happy Paws Clinic", 10, 8, "2024-01-11"),
		sale(vaccine, "Vetcare Center", 3, 100, "2024-01-12"),
	}

	rows := SalesPerformance(sales, "2024", "1", "Happy Paws Clinic", FilterAll)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].TotalSales)
	assert.Equal(t, 10, rows[1].TotalSales)

	rows = SalesPerformance(sales, "2024", "1", FilterAll, "Sterile Gloves")
	require.Len(t, rows, 1)
	assert.Equal(t, "Sterile Gloves", rows[0].Name)

	rows = SalesPerformance(sales, "2024", "1", "Happy Paws Clinic", "Premium Vaccine Vial")
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].TotalSales)
}

func TestSalesPerformance_LossStaysNegative(t *testing.T) {
	// Sold below cost: the row must report the loss, not hide or clamp it.
	p := batch("Expiring Dewormer", 60, 60, 10, "2024-01-05")
	s := sale(p, "Rescue Shelter", 3, 50, "2024-01-20")

	rows := SalesPerformance([]models.Sale{s}, "2024", "1", FilterAll, FilterAll)
	require.Len(t, rows, 1)
	assert.InDelta(t, -30, rows[0].TotalProfit, 0.001)
}

func TestSalesPerformance_SnapshotCostFromJoinedProduct(t *testing.T) {
	p := batch("Premium Vaccine Vial", 60, 100, 50, "2024-01-05")
	s := sale(p, "Happy Paws Clinic", 2, 100, "2024-01-10")

	// The engine must use the cost carried on the sale's joined row, even if
	// the products table has since been edited.
	s.Product.AcquisitionPrice = 70

	rows := SalesPerformance([]models.Sale{s}, "2024", "1", FilterAll, FilterAll)
	require.Len(t, rows, 1)
	assert.InDelta(t, 140, rows[0].TotalCost, 0.001)
	assert.InDelta(t, 60, rows[0].TotalProfit, 0.001)
}

func TestDistinctYearsAndMonths(t *testing.T) {
	products := []models.Product{
		batch("Dental Kit", 15, 30, 5, "2022-06-20"),
		batch("Sterile Gloves", 4, 8, 20, "2024-01-15"),
	}
	sales := []models.Sale{
		sale(products[0], "Happy Paws Clinic", 1, 30, "2023-02-01"),
	}

	assert.Equal(t, []int{2024, 2023, 2022}, DistinctYears(products, sales))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, Months())
}

func TestEndToEndScenario(t *testing.T) {
	product := batch("X", 60, 100, 10, "2024-01-05")
	s := sale(product, "Happy Paws Clinic", 2, 100, "2024-01-10")

	inv := SummarizeInventory([]models.Product{product})
	assert.Equal(t, 10, inv.TotalStock)
	assert.InDelta(t, 1000, inv.InventoryValue, 0.001)

	rows := SalesPerformance([]models.Sale{s}, "2024", "1", FilterAll, FilterAll)
	require.Len(t, rows, 1)
	assert.Equal(t, "X", rows[0].Name)
	assert.Equal(t, 100.0, rows[0].SellingPrice)
	assert.Equal(t, 2, rows[0].TotalSales)
	assert.InDelta(t, 200, rows[0].TotalRevenue, 0.001)
	assert.InDelta(t, 120, rows[0].TotalCost, 0.001)
	assert.InDelta(t, 80, rows[0].TotalProfit, 0.001)
}
