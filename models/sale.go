package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a single recorded transaction against exactly one product
// batch. SalePrice is captured at sale time and is never rewritten when the
// product's price changes later. The product name and acquisition cost used
// by reports come from the joined Product row (snapshot-at-read): editing a
// product's acquisition price rewrites historical profit figures, which
// matches how the business has always read these reports.
type Sale struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ClientName string    `gorm:"type:varchar(200);not null" json:"client_name"`
	Quantity   int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	SaleDate   time.Time `gorm:"type:date;not null;index" json:"sale_date"`
	SalePrice  float64   `gorm:"type:decimal(12,2);not null;check:sale_price >= 0" json:"sale_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// FK constraint creation is disabled at the connection level: deleting a
	// product leaves its sales dangling, the same gap the business has lived
	// with since the first spreadsheet.
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// BeforeCreate assigns the opaque record id
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
