package ordering

import (
	"context"

	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

// Store is the persistence boundary of order creation. Transact runs fn
// inside one transaction: if fn returns an error nothing is committed.
type Store interface {
	Transact(ctx context.Context, fn func(tx Tx) error) error

	// OrderByID returns a fully hydrated order (items, customer, wilaya,
	// baladiya) after a successful transaction.
	OrderByID(ctx context.Context, id string) (*models.Order, error)
}

// Tx is the set of operations available inside an order transaction.
type Tx interface {
	// ProductByID returns an active product or ErrProductNotFound.
	ProductByID(id string) (*models.Product, error)

	// DecrementStock atomically subtracts qty from the product's stock,
	// guarded by stock >= qty. It returns ErrInsufficientStock when the
	// guard fails; stock never goes negative.
	DecrementStock(productID string, qty int) error

	// CustomerByPhone returns (nil, nil) when no customer has the phone.
	CustomerByPhone(phone string) (*models.Customer, error)

	// CreateCustomer inserts a new customer; a phone uniqueness race maps
	// to ErrCustomerConflict.
	CreateCustomer(customer *models.Customer) error

	// CreateOrder inserts the order and its items; a tracking-number
	// uniqueness violation maps to ErrTrackingConflict.
	CreateOrder(order *models.Order) error
}
