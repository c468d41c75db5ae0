package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
	"github.com/oussama2210/intimate-essentials-shop/app/ordering"
)

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerPhone   string             `json:"customerPhone" validate:"required,min=9,max=20"`
	CustomerEmail   string             `json:"customerEmail" validate:"omitempty,email"`
	WilayaID        int                `json:"wilayaId" validate:"required,min=1,max=58"`
	BaladiyaID      int                `json:"baladiyaId" validate:"required,min=1"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=CASH_ON_DELIVERY"`
	DeliveryType    string             `json:"deliveryType" validate:"omitempty,oneof=HOME STOP_DESK"`
	IsExpress       bool               `json:"isExpress"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrder handles POST /api/orders. Delivery cost is always recomputed
// server-side; any cost in the client payload is ignored.
func (server *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Invalid JSON payload")
		return
	}

	if err := server.validate.Struct(req); err != nil {
		server.respondValidationError(w, consts.ErrCodeValidation, err)
		return
	}

	items := make([]ordering.LineItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ordering.LineItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := server.Orders.Create(r.Context(), ordering.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		WilayaID:        req.WilayaID,
		BaladiyaID:      req.BaladiyaID,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
		DeliveryType:    req.DeliveryType,
		IsExpress:       req.IsExpress,
	})
	if err != nil {
		server.respondOrderError(w, err)
		return
	}

	server.respondMessage(w, http.StatusCreated, order, "Order created successfully")
}

// respondOrderError translates coordinator errors onto the wire contract.
// Conflicts (stock, tracking exhaustion) are distinct from not-found so the
// storefront can message "out of stock" vs "try again".
func (server *Server) respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordering.ErrProductNotFound):
		server.respondError(w, http.StatusNotFound, consts.ErrCodeProductNotFound, err.Error())
	case errors.Is(err, ordering.ErrInsufficientStock):
		server.respondError(w, http.StatusConflict, consts.ErrCodeInsufficientStock, err.Error())
	case errors.Is(err, ordering.ErrWilayaNotFound):
		server.respondError(w, http.StatusNotFound, consts.ErrCodeWilayaNotFound, "Wilaya not found")
	case errors.Is(err, ordering.ErrBaladiyaNotFound):
		server.respondError(w, http.StatusNotFound, consts.ErrCodeBaladiyaNotFound, "Baladiya not found")
	case errors.Is(err, ordering.ErrEmptyOrder), errors.Is(err, ordering.ErrInvalidQuantity),
		errors.Is(err, delivery.ErrInvalidDeliveryType):
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, err.Error())
	case errors.Is(err, ordering.ErrTrackingExhausted):
		server.respondError(w, http.StatusConflict, consts.ErrCodeTrackingExhausted, "Could not allocate a tracking number, please retry")
	default:
		log.Println("create order error:", err)
		server.respondError(w, http.StatusInternalServerError, consts.ErrCodeCreateOrder, "Failed to create order")
	}
}

// GetOrderByTracking handles GET /api/orders/tracking/{trackingNumber}.
// Public endpoint: the customer record is not exposed.
func (server *Server) GetOrderByTracking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderModel := models.Order{}
	order, err := orderModel.FindByTrackingNumber(server.DB, vars["trackingNumber"])
	if err != nil {
		server.respondError(w, http.StatusNotFound, consts.ErrCodeOrderNotFound, "Order not found")
		return
	}

	server.respondData(w, http.StatusOK, order)
}

// GetOrders handles GET /api/orders (admin).
func (server *Server) GetOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	wilayaID, _ := strconv.Atoi(q.Get("wilayaId"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = 50
	}

	orderModel := models.Order{}
	orders, err := orderModel.GetOrders(server.DB, status, wilayaID, limit)
	if err != nil {
		log.Println("list orders error:", err)
		server.respondError(w, http.StatusInternalServerError, consts.ErrCodeInternal, "Failed to fetch orders")
		return
	}

	server.respondData(w, http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/status (admin). The
// transition table is enforced; the legacy any-to-any behavior is gone.
func (server *Server) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Invalid JSON payload")
		return
	}
	if err := server.validate.Struct(req); err != nil {
		server.respondValidationError(w, consts.ErrCodeValidation, err)
		return
	}

	orderModel := models.Order{}
	order, err := orderModel.UpdateStatus(server.DB, vars["id"], req.Status)
	switch {
	case err == nil:
		server.respondMessage(w, http.StatusOK, order, "Order status updated successfully")
	case errors.Is(err, models.ErrInvalidStatus):
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeInvalidStatus, "Invalid order status")
	case errors.Is(err, models.ErrInvalidTransition):
		server.respondError(w, http.StatusConflict, consts.ErrCodeInvalidTransition, "Status transition not allowed")
	case errors.Is(err, gorm.ErrRecordNotFound):
		server.respondError(w, http.StatusNotFound, consts.ErrCodeOrderNotFound, "Order not found")
	default:
		log.Println("update order status error:", err)
		server.respondError(w, http.StatusInternalServerError, consts.ErrCodeInternal, "Failed to update order status")
	}
}
