package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
)

type DeliveryCostRequest struct {
	WilayaID     int              `json:"wilayaId" validate:"required,min=1,max=58"`
	TotalAmount  decimal.Decimal  `json:"totalAmount"`
	WeightKg     *decimal.Decimal `json:"weight"`
	ItemCount    int              `json:"itemCount" validate:"omitempty,min=0"`
	IsExpress    bool             `json:"isExpress"`
	DeliveryType string           `json:"deliveryType" validate:"omitempty,oneof=HOME STOP_DESK"`
}

// CalculateDeliveryCost handles POST /api/delivery/calculate and returns the
// full quote breakdown. The quote is informational; order creation recomputes
// it and never trusts the client's copy.
func (server *Server) CalculateDeliveryCost(w http.ResponseWriter, r *http.Request) {
	var req DeliveryCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Invalid JSON payload")
		return
	}

	if err := server.validate.Struct(req); err != nil {
		server.respondValidationError(w, consts.ErrCodeValidation, err)
		return
	}
	if !req.TotalAmount.IsPositive() {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Total amount must be positive")
		return
	}
	if req.WeightKg != nil && !req.WeightKg.IsPositive() {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Weight must be positive")
		return
	}

	quote, err := server.Engine.Quote(req.WilayaID, req.TotalAmount, req.WeightKg, req.ItemCount, req.IsExpress, req.DeliveryType)
	switch {
	case err == nil:
		server.respondData(w, http.StatusOK, quote)
	case errors.Is(err, delivery.ErrWilayaNotFound), errors.Is(err, delivery.ErrNoActiveZone):
		server.respondError(w, http.StatusNotFound, consts.ErrCodeNotFound, "Wilaya not found")
	case errors.Is(err, delivery.ErrInvalidDeliveryType):
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, err.Error())
	default:
		server.respondError(w, http.StatusInternalServerError, consts.ErrCodeInternal, "Failed to calculate delivery cost")
	}
}
