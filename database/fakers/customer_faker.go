package fakers

import (
	"fmt"
	"math/rand"

	"github.com/bxcodec/faker/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

func CustomerFaker(db *gorm.DB) *models.Customer {
	wilayaID := 1 + rand.Intn(58)

	return &models.Customer{
		ID:         uuid.New().String(),
		FirstName:  faker.FirstName(),
		LastName:   faker.LastName(),
		Phone:      fmt.Sprintf("05%08d", rand.Intn(100000000)),
		Email:      faker.Email(),
		WilayaID:   wilayaID,
		BaladiyaID: wilayaID*1000 + 1,
	}
}
