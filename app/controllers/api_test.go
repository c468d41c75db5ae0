package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
	"github.com/oussama2210/intimate-essentials-shop/app/location"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
	"github.com/oussama2210/intimate-essentials-shop/app/ordering"
)

// stubOrderService substitutes the transaction coordinator so handler tests
// need no database.
type stubOrderService struct {
	create func(ctx context.Context, in ordering.CreateOrderInput) (*models.Order, error)
	calls  int
	lastIn ordering.CreateOrderInput
}

func (s *stubOrderService) Create(ctx context.Context, in ordering.CreateOrderInput) (*models.Order, error) {
	s.calls++
	s.lastIn = in
	return s.create(ctx, in)
}

func newTestServer(orders OrderService) *Server {
	server := &Server{Catalog: location.NewCatalog()}
	server.Engine = delivery.NewEngine(server.Catalog, delivery.DefaultConfig())
	server.Orders = orders
	server.Sessions = sessions.NewCookieStore([]byte("test-secret"))
	server.render = render.New()
	server.validate = validator.New(validator.WithRequiredStructEnabled())
	server.initializeRoutes()
	return server
}

func doJSON(t *testing.T, server *Server, method, path, body string) (*httptest.ResponseRecorder, Result) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	var result Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, result
}

func TestCalculateDeliveryCost(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	rec, result := doJSON(t, server, http.MethodPost, "/api/delivery/calculate",
		`{"wilayaId":16,"totalAmount":"1000","weight":"3","itemCount":15,"isExpress":true,"deliveryType":"HOME"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if !result.Success {
		t.Fatal("expected success envelope")
	}

	raw, _ := json.Marshal(result.Data)
	var quote delivery.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if !quote.DeliveryCost.Equal(decimal.NewFromInt(975)) {
		t.Errorf("delivery cost = %s, want 975", quote.DeliveryCost)
	}
	if quote.EstimatedDays != 1 {
		t.Errorf("estimated days = %d, want 1", quote.EstimatedDays)
	}
}

func TestCalculateDeliveryCostValidation(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	tests := []struct {
		name string
		body string
	}{
		{"wilaya out of range", `{"wilayaId":99,"totalAmount":"1000"}`},
		{"missing wilaya", `{"totalAmount":"1000"}`},
		{"non-positive amount", `{"wilayaId":16,"totalAmount":"0"}`},
		{"negative weight", `{"wilayaId":16,"totalAmount":"1000","weight":"-1"}`},
		{"bad delivery type", `{"wilayaId":16,"totalAmount":"1000","deliveryType":"DRONE"}`},
		{"malformed JSON", `{"wilayaId":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, result := doJSON(t, server, http.MethodPost, "/api/delivery/calculate", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if result.Success || result.Error == nil || result.Error.Code != consts.ErrCodeValidation {
				t.Errorf("expected VALIDATION_ERROR envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestCalculateDeliveryCostFreeDelivery(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	rec, result := doJSON(t, server, http.MethodPost, "/api/delivery/calculate",
		`{"wilayaId":16,"totalAmount":"6000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	raw, _ := json.Marshal(result.Data)
	var quote delivery.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if !quote.FreeDelivery || !quote.DeliveryCost.IsZero() {
		t.Errorf("expected free delivery with zero cost, got %+v", quote)
	}
}

const validOrderBody = `{
	"customerName": "Amina Kaci",
	"customerPhone": "0550123456",
	"wilayaId": 16,
	"baladiyaId": 16001,
	"deliveryAddress": "12 Rue Didouche Mourad",
	"items": [{"productId": "p1", "quantity": 2}],
	"paymentMethod": "CASH_ON_DELIVERY"
}`

func TestCreateOrderSuccess(t *testing.T) {
	stub := &stubOrderService{
		create: func(ctx context.Context, in ordering.CreateOrderInput) (*models.Order, error) {
			return &models.Order{
				ID:             "order-1",
				TrackingNumber: "SY12345678901",
				Status:         consts.OrderStatusPending,
				TotalAmount:    decimal.NewFromInt(2000),
				DeliveryCost:   decimal.NewFromInt(500),
				GrandTotal:     decimal.NewFromInt(2500),
			}, nil
		},
	}
	server := newTestServer(stub)

	rec, result := doJSON(t, server, http.MethodPost, "/api/orders", validOrderBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	if !result.Success {
		t.Fatal("expected success envelope")
	}
	if stub.calls != 1 {
		t.Fatalf("coordinator calls = %d, want 1", stub.calls)
	}
	if stub.lastIn.WilayaID != 16 || stub.lastIn.BaladiyaID != 16001 {
		t.Errorf("destination passed through wrong: %+v", stub.lastIn)
	}
	if len(stub.lastIn.Items) != 1 || stub.lastIn.Items[0].Quantity != 2 {
		t.Errorf("items passed through wrong: %+v", stub.lastIn.Items)
	}
	if !strings.Contains(rec.Body.String(), "SY12345678901") {
		t.Error("response should carry the tracking number")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	stub := &stubOrderService{
		create: func(ctx context.Context, in ordering.CreateOrderInput) (*models.Order, error) {
			return nil, errors.New("must not be called")
		},
	}
	server := newTestServer(stub)

	tests := []struct {
		name string
		body string
	}{
		{"missing items", `{"customerName":"A","customerPhone":"0550123456","wilayaId":16,"baladiyaId":16001,"deliveryAddress":"x","paymentMethod":"CASH_ON_DELIVERY"}`},
		{"zero quantity", `{"customerName":"A","customerPhone":"0550123456","wilayaId":16,"baladiyaId":16001,"deliveryAddress":"x","items":[{"productId":"p1","quantity":0}],"paymentMethod":"CASH_ON_DELIVERY"}`},
		{"wilaya out of range", `{"customerName":"A","customerPhone":"0550123456","wilayaId":59,"baladiyaId":16001,"deliveryAddress":"x","items":[{"productId":"p1","quantity":1}],"paymentMethod":"CASH_ON_DELIVERY"}`},
		{"short phone", `{"customerName":"A","customerPhone":"123","wilayaId":16,"baladiyaId":16001,"deliveryAddress":"x","items":[{"productId":"p1","quantity":1}],"paymentMethod":"CASH_ON_DELIVERY"}`},
		{"unsupported payment method", `{"customerName":"A","customerPhone":"0550123456","wilayaId":16,"baladiyaId":16001,"deliveryAddress":"x","items":[{"productId":"p1","quantity":1}],"paymentMethod":"CARD"}`},
		{"malformed JSON", `{"customerName":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, result := doJSON(t, server, http.MethodPost, "/api/orders", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if result.Error == nil || result.Error.Code != consts.ErrCodeValidation {
				t.Errorf("expected VALIDATION_ERROR, got %s", rec.Body.String())
			}
		})
	}

	if stub.calls != 0 {
		t.Errorf("coordinator must not be reached on validation failure, calls = %d", stub.calls)
	}
}

func TestCreateOrderErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"product not found", ordering.ErrProductNotFound, http.StatusNotFound, consts.ErrCodeProductNotFound},
		{"insufficient stock", ordering.ErrInsufficientStock, http.StatusConflict, consts.ErrCodeInsufficientStock},
		{"wilaya not found", ordering.ErrWilayaNotFound, http.StatusNotFound, consts.ErrCodeWilayaNotFound},
		{"baladiya not found", ordering.ErrBaladiyaNotFound, http.StatusNotFound, consts.ErrCodeBaladiyaNotFound},
		{"tracking exhausted", ordering.ErrTrackingExhausted, http.StatusConflict, consts.ErrCodeTrackingExhausted},
		{"unexpected failure", errors.New("connection reset"), http.StatusInternalServerError, consts.ErrCodeCreateOrder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(&stubOrderService{
				create: func(ctx context.Context, in ordering.CreateOrderInput) (*models.Order, error) {
					return nil, tc.err
				},
			})

			rec, result := doJSON(t, server, http.MethodPost, "/api/orders", validOrderBody)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if result.Success {
				t.Error("error responses must not be marked successful")
			}
			if result.Error == nil || result.Error.Code != tc.wantCode {
				t.Errorf("error code = %v, want %s", result.Error, tc.wantCode)
			}
		})
	}
}

func TestGetWilayas(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	rec, result := doJSON(t, server, http.MethodGet, "/api/wilayas", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if result.Count == nil || *result.Count != 58 {
		t.Errorf("count = %v, want 58", result.Count)
	}
}

func TestGetWilayaByID(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	rec, result := doJSON(t, server, http.MethodGet, "/api/wilayas/16", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	raw, _ := json.Marshal(result.Data)
	var wilaya location.Wilaya
	if err := json.Unmarshal(raw, &wilaya); err != nil {
		t.Fatalf("decode wilaya: %v", err)
	}
	if wilaya.ID != 16 || wilaya.Code != "16" {
		t.Errorf("wilaya = %+v, want id 16", wilaya)
	}

	rec, result = doJSON(t, server, http.MethodGet, "/api/wilayas/99", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range id: status = %d, want 400", rec.Code)
	}
	if result.Error == nil || result.Error.Code != consts.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", rec.Body.String())
	}

	rec, _ = doJSON(t, server, http.MethodGet, "/api/wilayas/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status = %d, want 400", rec.Code)
	}
}

func TestGetBaladiyasByWilaya(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	rec, result := doJSON(t, server, http.MethodGet, "/api/wilayas/16/baladiyas", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if result.Count == nil || *result.Count < 1 {
		t.Errorf("count = %v, want at least 1", result.Count)
	}
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	server := newTestServer(&stubOrderService{})

	rec, result := doJSON(t, server, http.MethodGet, "/api/orders", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /api/orders: status = %d, want 401", rec.Code)
	}
	if result.Error == nil || result.Error.Code != consts.ErrCodeUnauthorized {
		t.Errorf("expected UNAUTHORIZED, got %s", rec.Body.String())
	}

	rec, _ = doJSON(t, server, http.MethodPatch, "/api/orders/some-id/status", `{"status":"CONFIRMED"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("PATCH status: status = %d, want 401", rec.Code)
	}
}
