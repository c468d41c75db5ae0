package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Sku              string          `gorm:"size:100;index" json:"sku"`
	Name             string          `gorm:"size:255" json:"name"`
	Slug             string          `gorm:"size:255;uniqueIndex" json:"slug"`
	Price            decimal.Decimal `gorm:"type:decimal(16,2)" json:"price"`
	Stock            int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	WeightKg         decimal.Decimal `gorm:"type:decimal(10,2)" json:"weightKg"`
	ShortDescription string          `gorm:"type:text" json:"shortDescription"`
	Description      string          `gorm:"type:text" json:"description"`
	IsActive         bool            `gorm:"default:true" json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt  `json:"-"`
}

func (p *Product) GetProducts(db *gorm.DB, perPage int, page int) (*[]Product, int64, error) {
	var products []Product
	var count int64

	err := db.Model(&Product{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage

	err = db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return &products, count, nil
}

func (p *Product) FindBySlug(db *gorm.DB, slug string) (*Product, error) {
	var product Product
	err := db.Where("slug = ?", slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *Product) FindByID(db *gorm.DB, id string) (*Product, error) {
	var product Product
	if err := db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
