package fakers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bxcodec/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

func ProductFaker(db *gorm.DB) *models.Product {
	name := faker.Word() + " " + faker.Word()
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-")) + "-" + uuid.New().String()[:8]

	return &models.Product{
		ID:               uuid.New().String(),
		Sku:              fmt.Sprintf("SKU-%05d", rand.Intn(100000)),
		Name:             name,
		Slug:             slug,
		Price:            decimal.NewFromInt(int64(500 + rand.Intn(9500))),
		Stock:            rand.Intn(100),
		WeightKg:         decimal.NewFromFloat(0.2 + rand.Float64()*2),
		ShortDescription: faker.Sentence(),
		Description:      faker.Paragraph(),
		IsActive:         true,
	}
}
