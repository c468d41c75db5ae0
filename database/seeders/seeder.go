package seeders

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oussama2210/intimate-essentials-shop/app/location"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

// DBSeed mirrors the static location catalog into the database, creates the
// back-office admin and a small demo product set. Safe to re-run: location
// rows are upserted and everything else is created only when absent.
func DBSeed(db *gorm.DB) error {
	if err := seedLocations(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}

	fmt.Println("Database seeded successfully")
	return nil
}

func seedLocations(db *gorm.DB) error {
	catalog := location.NewCatalog()

	for _, w := range catalog.Wilayas() {
		row := models.Wilaya{
			ID:                 w.ID,
			Name:               w.Name,
			Code:               w.Code,
			HomeDeliveryCost:   w.HomeDeliveryCost,
			OfficeDeliveryCost: w.OfficeDeliveryCost,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed wilaya %d: %w", w.ID, err)
		}

		zone, err := catalog.ActiveZone(w.ID)
		if err != nil {
			return fmt.Errorf("seed zone %d: %w", w.ID, err)
		}
		zoneRow := models.DeliveryZone{WilayaID: w.ID}
		if err := db.Where("wilaya_id = ?", w.ID).
			Attrs(models.DeliveryZone{ID: uuid.New().String(), EstimatedDays: zone.EstimatedDays, IsActive: true}).
			FirstOrCreate(&zoneRow).Error; err != nil {
			return fmt.Errorf("seed zone %d: %w", w.ID, err)
		}

		baladiyas, err := catalog.BaladiyasByWilaya(w.ID)
		if err != nil {
			return err
		}
		for _, b := range baladiyas {
			baladiyaRow := models.Baladiya{
				ID:         b.ID,
				WilayaID:   b.WilayaID,
				Name:       b.Name,
				PostalCode: b.PostalCode,
			}
			if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&baladiyaRow).Error; err != nil {
				return fmt.Errorf("seed baladiya %d: %w", b.ID, err)
			}
		}
	}

	return nil
}

func seedAdmin(db *gorm.DB) error {
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "admin123")

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{}
	return db.Where("email = ?", email).
		Attrs(models.AdminUser{
			ID:       uuid.New().String(),
			Name:     "Store Admin",
			Email:    email,
			Password: string(hashed),
		}).
		FirstOrCreate(&admin).Error
}

func seedProducts(db *gorm.DB) error {
	demo := []models.Product{
		{Name: "Silk Night Set", Slug: "silk-night-set", Sku: "SNS-001", Price: decimal.NewFromInt(4200), Stock: 40, WeightKg: decimal.NewFromFloat(0.4)},
		{Name: "Lace Comfort Robe", Slug: "lace-comfort-robe", Sku: "LCR-002", Price: decimal.NewFromInt(3600), Stock: 25, WeightKg: decimal.NewFromFloat(0.6)},
		{Name: "Cotton Essentials Pack", Slug: "cotton-essentials-pack", Sku: "CEP-003", Price: decimal.NewFromInt(2500), Stock: 80, WeightKg: decimal.NewFromFloat(0.8)},
		{Name: "Satin Pillow Slip", Slug: "satin-pillow-slip", Sku: "SPS-004", Price: decimal.NewFromInt(1800), Stock: 60, WeightKg: decimal.NewFromFloat(0.3)},
	}

	for _, p := range demo {
		product := models.Product{}
		if err := db.Where("slug = ?", p.Slug).
			Attrs(models.Product{
				ID:       uuid.New().String(),
				Sku:      p.Sku,
				Name:     p.Name,
				Slug:     p.Slug,
				Price:    p.Price,
				Stock:    p.Stock,
				WeightKg: p.WeightKg,
				IsActive: true,
			}).
			FirstOrCreate(&product).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}

	return nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
