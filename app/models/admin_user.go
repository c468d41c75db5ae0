package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser backs the back-office login used for order management.
type AdminUser struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *AdminUser) FindByEmail(db *gorm.DB, email string) (*AdminUser, error) {
	var admin AdminUser
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
