package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents an entry in the client directory
type Client struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Address       string    `gorm:"type:varchar(300)" json:"address,omitempty"`
	ContactNumber string    `gorm:"type:varchar(50)" json:"contact_number,omitempty"`
	Account       string    `gorm:"type:varchar(100)" json:"account,omitempty"`
	TINNumber     string    `gorm:"type:varchar(50)" json:"tin_number,omitempty"`
	ContactPerson string    `gorm:"type:varchar(200)" json:"contact_person,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate assigns the opaque record id
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
