package handlers

import (
	"errors"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/reports"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductList displays product batches filtered by purchase year/month
func ProductList(c *fiber.Ctx) error {
	db := database.GetDB()

	year := filterValue(c, "year")
	month := filterValue(c, "month")

	var products []models.Product
	if err := db.Order("purchase_date DESC, name ASC").Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load products")
	}

	var sales []models.Sale
	db.Find(&sales)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if reports.MatchesPeriod(p.PurchaseDate, year, month) {
			filtered = append(filtered, p)
		}
	}

	return render(c, "pages/products/list", fiber.Map{
		"Title":         "Products",
		"Active":        "products",
		"Products":      filtered,
		"Years":         reports.DistinctYears(products, sales),
		"Months":        reports.Months(),
		"SelectedYear":  year,
		"SelectedMonth": month,
	})
}

// ProductNew shows the form to record a new purchase batch
func ProductNew(c *fiber.Ctx) error {
	return render(c, "pages/products/form", fiber.Map{
		"Title":   "New Product Batch",
		"Active":  "products",
		"IsNew":   true,
		"Product": models.Product{},
	})
}

// ProductCreate records a new purchase batch. Remaining stock starts
// equal to the purchased quantity.
func ProductCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	product, err := productFromForm(c)
	if err != nil {
		return err
	}
	product.Remaining = product.PurchaseQty

	if err := db.Create(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create product: "+err.Error())
	}

	return c.Redirect("/products")
}

// ProductEdit shows the form to edit an existing batch
func ProductEdit(c *fiber.Ctx) error {
	product, err := loadProduct(c)
	if err != nil {
		return err
	}

	return render(c, "pages/products/form", fiber.Map{
		"Title":   "Edit Product Batch",
		"Active":  "products",
		"IsNew":   false,
		"Product": product,
	})
}

// ProductUpdate edits a batch in place. Remaining stock is editable
// directly so miscounts can be corrected; sales history is untouched.
func ProductUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	product, err := loadProduct(c)
	if err != nil {
		return err
	}

	updated, err := productFromForm(c)
	if err != nil {
		return err
	}

	remaining, err := parseIntField(c, "remaining")
	if err != nil {
		return err
	}
	if remaining < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "remaining cannot be negative")
	}

	product.Name = updated.Name
	product.SellingPrice = updated.SellingPrice
	product.ClinicPrice = updated.ClinicPrice
	product.DistributorPrice = updated.DistributorPrice
	product.AcquisitionPrice = updated.AcquisitionPrice
	product.PurchaseQty = updated.PurchaseQty
	product.Remaining = remaining
	product.PurchaseDate = updated.PurchaseDate
	product.ExpirationDate = updated.ExpirationDate
	product.SupplierName = updated.SupplierName

	if err := db.Save(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update product: "+err.Error())
	}

	return c.Redirect("/products")
}

// ProductDelete removes a batch. Sales that reference it keep their
// product id and drop out of name-keyed reports.
func ProductDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	product, err := loadProduct(c)
	if err != nil {
		return err
	}

	if err := db.Delete(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete product: "+err.Error())
	}

	return c.Redirect("/products")
}

func loadProduct(c *fiber.Ctx) (models.Product, error) {
	var product models.Product

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return product, fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if err := database.GetDB().First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product, fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return product, fiber.NewError(fiber.StatusInternalServerError, "could not load product")
	}

	return product, nil
}

func productFromForm(c *fiber.Ctx) (models.Product, error) {
	var product models.Product

	name := c.FormValue("name")
	if name == "" {
		return product, fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	sellingPrice, err := parseFloatField(c, "selling_price")
	if err != nil {
		return product, err
	}
	acquisitionPrice, err := parseFloatField(c, "acquisition_price")
	if err != nil {
		return product, err
	}
	clinicPrice, err := parseOptionalFloatField(c, "clinic_price")
	if err != nil {
		return product, err
	}
	distributorPrice, err := parseOptionalFloatField(c, "distributor_price")
	if err != nil {
		return product, err
	}
	purchaseQty, err := parseIntField(c, "purchase_qty")
	if err != nil {
		return product, err
	}
	purchaseDate, err := parseDateField(c, "purchase_date")
	if err != nil {
		return product, err
	}
	expirationDate, err := parseOptionalDateField(c, "expiration_date")
	if err != nil {
		return product, err
	}

	if sellingPrice < 0 || acquisitionPrice < 0 {
		return product, fiber.NewError(fiber.StatusBadRequest, "prices cannot be negative")
	}
	if purchaseQty < 0 {
		return product, fiber.NewError(fiber.StatusBadRequest, "purchase quantity cannot be negative")
	}

	product.Name = name
	product.SellingPrice = sellingPrice
	product.ClinicPrice = clinicPrice
	product.DistributorPrice = distributorPrice
	product.AcquisitionPrice = acquisitionPrice
	product.PurchaseQty = purchaseQty
	product.PurchaseDate = purchaseDate
	product.ExpirationDate = expirationDate
	product.SupplierName = c.FormValue("supplier_name")

	return product, nil
}
