package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wilaya mirrors the static location catalog into the database so orders can
// hold foreign keys. Rows are written by the seeder and read-only afterwards.
type Wilaya struct {
	ID                 int             `gorm:"primary_key" json:"id"`
	Name               string          `gorm:"size:100;not null" json:"name"`
	Code               string          `gorm:"size:2;not null;uniqueIndex" json:"code"`
	HomeDeliveryCost   decimal.Decimal `gorm:"type:decimal(16,2)" json:"homeDeliveryCost"`
	OfficeDeliveryCost decimal.Decimal `gorm:"type:decimal(16,2)" json:"officeDeliveryCost"`
	Baladiyas          []Baladiya      `json:"baladiyas,omitempty"`
}

type Baladiya struct {
	ID         int    `gorm:"primary_key" json:"id"`
	WilayaID   int    `gorm:"index;not null" json:"wilayaId"`
	Name       string `gorm:"size:100;not null" json:"name"`
	PostalCode string `gorm:"size:10" json:"postalCode"`
}

// DeliveryZone carries the transit estimate and active flag for one wilaya.
// Costs are intentionally absent: the wilaya row is the only money source.
type DeliveryZone struct {
	ID            string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	WilayaID      int    `gorm:"uniqueIndex;not null" json:"wilayaId"`
	EstimatedDays int    `gorm:"default:3" json:"estimatedDays"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`
}

func (w *Wilaya) FindByID(db *gorm.DB, id int) (*Wilaya, error) {
	var wilaya Wilaya
	err := db.Preload("Baladiyas").Where("id = ?", id).First(&wilaya).Error
	if err != nil {
		return nil, err
	}
	return &wilaya, nil
}
