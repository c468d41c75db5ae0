package ordering

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

// GormStore implements Store on top of Postgres. Transact maps onto a single
// database transaction, so a failing step rolls back every prior write.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transact(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

func (s *GormStore) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	orderModel := models.Order{}
	return orderModel.FindByID(s.db.WithContext(ctx), id)
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) ProductByID(id string) (*models.Product, error) {
	var product models.Product
	err := t.db.Where("id = ? AND is_active = ?", id, true).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (t *gormTx) DecrementStock(productID string, qty int) error {
	res := t.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (t *gormTx) CustomerByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	err := t.db.Where("phone = ?", phone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (t *gormTx) CreateCustomer(customer *models.Customer) error {
	err := t.db.Create(customer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCustomerConflict
	}
	return err
}

func (t *gormTx) CreateOrder(order *models.Order) error {
	err := t.db.Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrTrackingConflict
	}
	return err
}
