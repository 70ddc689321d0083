package handlers

import (
	"errors"
	"fmt"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/reports"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesList displays recorded sales filtered by sale year/month
func SalesList(c *fiber.Ctx) error {
	db := database.GetDB()

	year := filterValue(c, "year")
	month := filterValue(c, "month")

	var sales []models.Sale
	if err := db.Preload("Product").Order("sale_date DESC, created_at DESC").Find(&sales).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load sales")
	}

	var products []models.Product
	db.Find(&products)

	filtered := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if reports.MatchesPeriod(s.SaleDate, year, month) {
			filtered = append(filtered, s)
		}
	}

	return render(c, "pages/sales/list", fiber.Map{
		"Title":         "Sales",
		"Active":        "sales",
		"Sales":         filtered,
		"Years":         reports.DistinctYears(products, sales),
		"Months":        reports.Months(),
		"SelectedYear":  year,
		"SelectedMonth": month,
	})
}

// SaleNew shows the form to record a sale
func SaleNew(c *fiber.Ctx) error {
	db := database.GetDB()

	var products []models.Product
	db.Where("remaining > 0").Order("name ASC, purchase_date ASC").Find(&products)

	var clients []models.Client
	db.Order("name ASC").Find(&clients)

	return render(c, "pages/sales/form", fiber.Map{
		"Title":    "Record Sale",
		"Active":   "sales",
		"IsNew":    true,
		"Sale":     models.Sale{},
		"Products": products,
		"Clients":  clients,
	})
}

// SaleCreate records a sale and decrements the batch's remaining stock
// in the same transaction. The quantity check reads the batch first and
// writes the decrement after; two simultaneous sales of the last units
// can both pass the check, which the stock correction flow on the
// product edit page exists to fix.
func SaleCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	sale, err := saleFromForm(c)
	if err != nil {
		return err
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var product models.Product
	if err := tx.First(&product, "id = ?", sale.ProductID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "product not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not load product")
	}

	if sale.Quantity > product.Remaining {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("only %d left in stock for %s", product.Remaining, product.Name))
	}

	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not record sale: "+err.Error())
	}

	product.Remaining -= sale.Quantity
	if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
		UpdateColumn("remaining", product.Remaining).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not update stock: "+err.Error())
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not record sale: "+err.Error())
	}

	return c.Redirect("/sales")
}

// SaleEdit shows the form to edit a recorded sale
func SaleEdit(c *fiber.Ctx) error {
	db := database.GetDB()

	sale, err := loadSale(c)
	if err != nil {
		return err
	}

	var products []models.Product
	db.Order("name ASC, purchase_date ASC").Find(&products)

	var clients []models.Client
	db.Order("name ASC").Find(&clients)

	return render(c, "pages/sales/form", fiber.Map{
		"Title":    "Edit Sale",
		"Active":   "sales",
		"IsNew":    false,
		"Sale":     sale,
		"Products": products,
		"Clients":  clients,
	})
}

// SaleUpdate edits a sale record in place. Stock is NOT re-adjusted:
// corrections to quantity after the fact are reconciled on the product
// edit page, the same way the old spreadsheet handled them.
func SaleUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	sale, err := loadSale(c)
	if err != nil {
		return err
	}

	updated, err := saleFromForm(c)
	if err != nil {
		return err
	}

	sale.ProductID = updated.ProductID
	sale.ClientName = updated.ClientName
	sale.Quantity = updated.Quantity
	sale.SaleDate = updated.SaleDate
	sale.SalePrice = updated.SalePrice

	if err := db.Save(&sale).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update sale: "+err.Error())
	}

	return c.Redirect("/sales")
}

// SaleDelete removes a sale and returns its quantity to the batch's
// remaining stock in the same transaction. If the product is gone the
// sale is deleted alone.
func SaleDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	sale, err := loadSale(c)
	if err != nil {
		return err
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(&sale).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete sale: "+err.Error())
	}

	if err := tx.Model(&models.Product{}).Where("id = ?", sale.ProductID).
		UpdateColumn("remaining", gorm.Expr("remaining + ?", sale.Quantity)).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not restore stock: "+err.Error())
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete sale: "+err.Error())
	}

	return c.Redirect("/sales")
}

func loadSale(c *fiber.Ctx) (models.Sale, error) {
	var sale models.Sale

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return sale, fiber.NewError(fiber.StatusBadRequest, "invalid sale id")
	}

	if err := database.GetDB().First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sale, fiber.NewError(fiber.StatusNotFound, "sale not found")
		}
		return sale, fiber.NewError(fiber.StatusInternalServerError, "could not load sale")
	}

	return sale, nil
}

func saleFromForm(c *fiber.Ctx) (models.Sale, error) {
	var sale models.Sale

	productID, err := uuid.Parse(c.FormValue("product_id"))
	if err != nil {
		return sale, fiber.NewError(fiber.StatusBadRequest, "a product must be selected")
	}

	clientName := c.FormValue("client_name")
	if clientName == "" {
		return sale, fiber.NewError(fiber.StatusBadRequest, "client name is required")
	}

	quantity, err := parseIntField(c, "quantity")
	if err != nil {
		return sale, err
	}
	if quantity <= 0 {
		return sale, fiber.NewError(fiber.StatusBadRequest, "quantity must be positive")
	}

	saleDate, err := parseDateField(c, "sale_date")
	if err != nil {
		return sale, err
	}

	salePrice, err := parseFloatField(c, "sale_price")
	if err != nil {
		return sale, err
	}
	if salePrice < 0 {
		return sale, fiber.NewError(fiber.StatusBadRequest, "sale price cannot be negative")
	}

	sale.ProductID = productID
	sale.ClientName = clientName
	sale.Quantity = quantity
	sale.SaleDate = saleDate
	sale.SalePrice = salePrice

	return sale, nil
}
