package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/database/fakers"
)

// DBFake fills the database with generated products and customers for
// development environments.
func DBFake(db *gorm.DB) error {
	for i := 0; i < 20; i++ {
		if err := db.Create(fakers.ProductFaker(db)).Error; err != nil {
			return fmt.Errorf("fake product: %w", err)
		}
	}

	for i := 0; i < 10; i++ {
		if err := db.Create(fakers.CustomerFaker(db)).Error; err != nil {
			return fmt.Errorf("fake customer: %w", err)
		}
	}

	fmt.Println("Fake data generated successfully")
	return nil
}
