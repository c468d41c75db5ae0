package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is created as a side effect of the first order placed from a
// phone number. The phone is the natural key: later orders from the same
// phone reuse the record without touching its fields.
type Customer struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName  string    `gorm:"size:100" json:"firstName"`
	LastName   string    `gorm:"size:100" json:"lastName"`
	Phone      string    `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Email      string    `gorm:"size:255" json:"email,omitempty"`
	WilayaID   int       `gorm:"index" json:"wilayaId"`
	BaladiyaID int       `json:"baladiyaId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c *Customer) FindByPhone(db *gorm.DB, phone string) (*Customer, error) {
	var customer Customer
	if err := db.Where("phone = ?", phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
