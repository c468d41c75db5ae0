package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Order is created atomically with its items and never deleted; cancellation
// is a status, not a removal. TotalAmount is the sum of the item snapshots
// taken at creation, not of live product prices.
type Order struct {
	ID                string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Customer          *Customer       `json:"customer,omitempty"`
	CustomerID        string          `gorm:"size:36;index;not null" json:"customerId"`
	Wilaya            *Wilaya         `json:"wilaya,omitempty"`
	WilayaID          int             `gorm:"index;not null" json:"wilayaId"`
	Baladiya          *Baladiya       `json:"baladiya,omitempty"`
	BaladiyaID        int             `gorm:"not null" json:"baladiyaId"`
	DeliveryAddress   string          `gorm:"size:500" json:"deliveryAddress"`
	OrderItems        []OrderItem     `json:"items"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(16,2)" json:"totalAmount"`
	DeliveryCost      decimal.Decimal `gorm:"type:decimal(16,2)" json:"deliveryCost"`
	GrandTotal        decimal.Decimal `gorm:"type:decimal(16,2)" json:"grandTotal"`
	DeliveryType      string          `gorm:"size:20" json:"deliveryType"`
	IsExpress         bool            `json:"isExpress"`
	EstimatedDays     int             `json:"estimatedDays"`
	DeliveryBreakdown datatypes.JSON  `json:"deliveryBreakdown"`
	PaymentMethod     string          `gorm:"size:30" json:"paymentMethod"`
	Status            string          `gorm:"size:20;index" json:"status"`
	TrackingNumber    string          `gorm:"size:20;not null;uniqueIndex" json:"trackingNumber"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// OrderItem snapshots the product's price at order time so historical orders
// are insulated from later price changes.
type OrderItem struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID    string          `gorm:"size:36;index;not null" json:"orderId"`
	Product    *Product        `json:"product,omitempty"`
	ProductID  string          `gorm:"size:36;index;not null" json:"productId"`
	Sku        string          `gorm:"size:100" json:"sku"`
	Name       string          `gorm:"size:255" json:"name"`
	Qty        int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(16,2)" json:"unitPrice"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(16,2)" json:"totalPrice"`
}

func (o *Order) FindByID(db *gorm.DB, id string) (*Order, error) {
	var order Order
	err := db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("Customer").
		Preload("Wilaya").
		Preload("Baladiya").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *Order) FindByTrackingNumber(db *gorm.DB, trackingNumber string) (*Order, error) {
	var order Order
	err := db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("Wilaya").
		Preload("Baladiya").
		Where("tracking_number = ?", trackingNumber).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves the order through the lifecycle state machine. The
// transition table is strict: anything outside it is rejected, including
// changes out of the DELIVERED and CANCELLED terminal states.
func (o *Order) UpdateStatus(db *gorm.DB, id string, status string) (*Order, error) {
	if !consts.IsOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := o.FindByID(db, id)
	if err != nil {
		return nil, err
	}

	if !consts.CanTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := db.Model(&Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// GetOrders lists orders newest first with optional status and wilaya filters.
func (o *Order) GetOrders(db *gorm.DB, status string, wilayaID int, limit int) ([]Order, error) {
	var orders []Order

	q := db.
		Preload("OrderItems").
		Preload("Customer").
		Preload("Wilaya").
		Order("created_at DESC")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if wilayaID > 0 {
		q = q.Where("wilaya_id = ?", wilayaID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
