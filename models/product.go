package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents one purchase batch of a sellable item. The same product
// name may appear across many rows with different acquisition cost, purchase
// date and expiration date; each row tracks its own remaining stock.
type Product struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string     `gorm:"type:varchar(200);not null" json:"name"`
	SellingPrice     float64    `gorm:"type:decimal(12,2);not null;check:selling_price >= 0" json:"selling_price"`
	ClinicPrice      *float64   `gorm:"type:decimal(12,2)" json:"clinic_price,omitempty"`
	DistributorPrice *float64   `gorm:"type:decimal(12,2)" json:"distributor_price,omitempty"`
	AcquisitionPrice float64    `gorm:"type:decimal(12,2);not null;check:acquisition_price >= 0" json:"acquisition_price"`
	PurchaseQty      int        `gorm:"not null;check:purchase_qty >= 0" json:"purchase_qty"`
	Remaining        int        `gorm:"not null;check:remaining >= 0" json:"remaining"`
	PurchaseDate     time.Time  `gorm:"type:date;not null" json:"purchase_date"`
	ExpirationDate   *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
	SupplierName     string     `gorm:"type:varchar(200)" json:"supplier_name,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the opaque record id
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
