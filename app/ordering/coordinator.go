package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
	"github.com/oussama2210/intimate-essentials-shop/app/location"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

// trackingAttempts bounds how many times a whole transaction is retried on a
// tracking-number collision before giving up.
const trackingAttempts = 3

type LineItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	WilayaID        int
	BaladiyaID      int
	DeliveryAddress string
	Items           []LineItemInput
	DeliveryType    string
	IsExpress       bool
}

// Coordinator runs order creation as one atomic unit: stock verification,
// price snapshotting, authoritative delivery quoting, customer upsert, order
// persistence and conditional stock decrement. The first failure aborts the
// transaction with nothing persisted.
type Coordinator struct {
	store   Store
	catalog *location.Catalog
	engine  *delivery.Engine

	// generateTracking is swappable in tests to force collisions.
	generateTracking func() string
}

func NewCoordinator(store Store, catalog *location.Catalog, engine *delivery.Engine) *Coordinator {
	return &Coordinator{
		store:            store,
		catalog:          catalog,
		engine:           engine,
		generateTracking: delivery.GenerateTrackingNumber,
	}
}

// Create places an order. A uniqueness race (tracking number or concurrent
// customer insert) rolls back and retries the whole transaction with fresh
// values; business failures are returned as the typed errors of this package.
func (c *Coordinator) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %s", ErrInvalidQuantity, item.ProductID)
		}
	}

	// The catalog is in-memory; resolve the destination before opening a
	// transaction so invalid destinations never touch the database.
	if _, err := c.catalog.WilayaByID(in.WilayaID); err != nil {
		return nil, ErrWilayaNotFound
	}
	if _, err := c.catalog.BaladiyaByID(in.WilayaID, in.BaladiyaID); err != nil {
		return nil, ErrBaladiyaNotFound
	}

	var lastErr error
	for attempt := 0; attempt < trackingAttempts; attempt++ {
		order, err := c.tryCreate(ctx, in)
		if err == nil {
			return order, nil
		}
		if !Retriable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrTrackingExhausted, lastErr)
}

func (c *Coordinator) tryCreate(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	orderID := uuid.New().String()

	err := c.store.Transact(ctx, func(tx Tx) error {
		var (
			orderItems  []models.OrderItem
			totalAmount = decimal.Zero
			totalWeight = decimal.Zero
			unitCount   int
		)

		for _, item := range in.Items {
			product, err := tx.ProductByID(item.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}

			qty := decimal.NewFromInt(int64(item.Quantity))
			lineTotal := product.Price.Mul(qty)
			totalAmount = totalAmount.Add(lineTotal)
			totalWeight = totalWeight.Add(product.WeightKg.Mul(qty))
			unitCount += item.Quantity

			// Unit price is captured here, permanently; future price
			// changes must not affect this order.
			orderItems = append(orderItems, models.OrderItem{
				ID:         uuid.New().String(),
				OrderID:    orderID,
				ProductID:  product.ID,
				Sku:        product.Sku,
				Name:       product.Name,
				Qty:        item.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: lineTotal,
			})
		}

		var weightKg *decimal.Decimal
		if totalWeight.GreaterThan(decimal.Zero) {
			weightKg = &totalWeight
		}

		// The quote is recomputed here authoritatively; any delivery cost
		// supplied by the client is ignored.
		quote, err := c.engine.Quote(in.WilayaID, totalAmount, weightKg, unitCount, in.IsExpress, in.DeliveryType)
		if err != nil {
			return c.mapQuoteError(err)
		}

		customer, err := c.upsertCustomer(tx, in)
		if err != nil {
			return err
		}

		breakdown, err := json.Marshal(quote)
		if err != nil {
			return fmt.Errorf("marshal delivery breakdown: %w", err)
		}

		order := &models.Order{
			ID:                orderID,
			CustomerID:        customer.ID,
			WilayaID:          in.WilayaID,
			BaladiyaID:        in.BaladiyaID,
			DeliveryAddress:   in.DeliveryAddress,
			OrderItems:        orderItems,
			TotalAmount:       totalAmount,
			DeliveryCost:      quote.DeliveryCost,
			GrandTotal:        totalAmount.Add(quote.DeliveryCost),
			DeliveryType:      quote.DeliveryType,
			IsExpress:         in.IsExpress,
			EstimatedDays:     quote.EstimatedDays,
			DeliveryBreakdown: breakdown,
			PaymentMethod:     consts.PaymentMethodCashOnDelivery,
			Status:            consts.OrderStatusPending,
			TrackingNumber:    c.generateTracking(),
		}

		if err := tx.CreateOrder(order); err != nil {
			return err
		}

		// Conditional decrement re-validates stock at write time: a
		// concurrent order that drained stock since the check above makes
		// this fail and rolls back everything, including the order row.
		for _, item := range in.Items {
			if err := tx.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.store.OrderByID(ctx, orderID)
}

// upsertCustomer reuses the customer matching the phone number without
// touching any field, or creates a new record from the order's contact info.
func (c *Coordinator) upsertCustomer(tx Tx, in CreateOrderInput) (*models.Customer, error) {
	existing, err := tx.CustomerByPhone(in.CustomerPhone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	firstName, lastName := splitName(in.CustomerName)
	customer := &models.Customer{
		ID:         uuid.New().String(),
		FirstName:  firstName,
		LastName:   lastName,
		Phone:      in.CustomerPhone,
		Email:      in.CustomerEmail,
		WilayaID:   in.WilayaID,
		BaladiyaID: in.BaladiyaID,
	}
	if err := tx.CreateCustomer(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (c *Coordinator) mapQuoteError(err error) error {
	if errors.Is(err, delivery.ErrWilayaNotFound) || errors.Is(err, delivery.ErrNoActiveZone) {
		return ErrWilayaNotFound
	}
	return err
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full, ""
	}
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return parts[0], strings.Join(parts[1:], " ")
}
