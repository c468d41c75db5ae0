package delivery_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
	"github.com/oussama2210/intimate-essentials-shop/app/location"
)

func newEngine(t *testing.T) *delivery.Engine {
	t.Helper()
	return delivery.NewEngine(location.NewCatalog(), delivery.DefaultConfig())
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestQuoteBaseCostMatchesCatalogForAllWilayas(t *testing.T) {
	catalog := location.NewCatalog()
	engine := delivery.NewEngine(catalog, delivery.DefaultConfig())

	for _, w := range catalog.Wilayas() {
		quote, err := engine.Quote(w.ID, dec(1000), nil, 1, false, delivery.TypeHome)
		if err != nil {
			t.Fatalf("wilaya %d: unexpected error: %v", w.ID, err)
		}
		if !quote.BaseCost.Equal(w.HomeDeliveryCost) {
			t.Errorf("wilaya %d: base cost = %s, want %s", w.ID, quote.BaseCost, w.HomeDeliveryCost)
		}
		if !quote.WeightSurcharge.IsZero() || !quote.ItemSurcharge.IsZero() || !quote.ExpressSurcharge.IsZero() {
			t.Errorf("wilaya %d: expected zero surcharges, got %+v", w.ID, quote)
		}
	}
}

func TestQuoteStopDeskUsesOfficeCost(t *testing.T) {
	engine := newEngine(t)

	quote, err := engine.Quote(16, dec(1000), nil, 1, false, delivery.TypeStopDesk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.BaseCost.Equal(dec(300)) {
		t.Errorf("stop-desk base cost = %s, want 300", quote.BaseCost)
	}
}

func TestQuoteDefaultsToHomeDelivery(t *testing.T) {
	engine := newEngine(t)

	quote, err := engine.Quote(16, dec(1000), nil, 1, false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.DeliveryType != delivery.TypeHome {
		t.Errorf("delivery type = %q, want HOME", quote.DeliveryType)
	}
	if !quote.BaseCost.Equal(dec(500)) {
		t.Errorf("base cost = %s, want 500", quote.BaseCost)
	}
}

func TestQuoteRejectsInvalidWilaya(t *testing.T) {
	engine := newEngine(t)

	for _, id := range []int{0, -1, 59, 100} {
		if _, err := engine.Quote(id, dec(1000), nil, 1, false, delivery.TypeHome); err != delivery.ErrWilayaNotFound {
			t.Errorf("wilaya %d: error = %v, want ErrWilayaNotFound", id, err)
		}
	}
}

func TestQuoteRejectsInvalidDeliveryType(t *testing.T) {
	engine := newEngine(t)

	if _, err := engine.Quote(16, dec(1000), nil, 1, false, "DRONE"); err == nil {
		t.Fatal("expected error for invalid delivery type")
	}
}

func TestWeightSurcharge(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name     string
		weight   *decimal.Decimal
		expected int64
	}{
		{"nil weight", nil, 0},
		{"half kilogram", decPtr(0.5), 0},
		{"exactly one kilogram", decPtr(1), 0},
		{"three kilograms", decPtr(3), 100},
		{"five kilograms", decPtr(5), 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := engine.Quote(16, dec(1000), tc.weight, 1, false, delivery.TypeHome)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !quote.WeightSurcharge.Equal(dec(tc.expected)) {
				t.Errorf("weight surcharge = %s, want %d", quote.WeightSurcharge, tc.expected)
			}
		})
	}
}

func TestItemSurcharge(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		items    int
		expected int64
	}{
		{1, 0},
		{10, 0},
		{11, 25},
		{15, 125},
	}

	for _, tc := range tests {
		quote, err := engine.Quote(16, dec(1000), nil, tc.items, false, delivery.TypeHome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !quote.ItemSurcharge.Equal(dec(tc.expected)) {
			t.Errorf("%d items: surcharge = %s, want %d", tc.items, quote.ItemSurcharge, tc.expected)
		}
	}
}

func TestExpressSurchargeAppliesToBaseCostOnly(t *testing.T) {
	engine := newEngine(t)

	// Weight and item surcharges present; the express component must still
	// be half the base cost alone.
	quote, err := engine.Quote(16, dec(1000), decPtr(3), 15, true, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.ExpressSurcharge.Equal(dec(250)) {
		t.Errorf("express surcharge = %s, want 250 (base 500 x 0.5)", quote.ExpressSurcharge)
	}
	// 500 + 100 + 125 + 250
	if !quote.DeliveryCost.Equal(dec(975)) {
		t.Errorf("delivery cost = %s, want 975", quote.DeliveryCost)
	}
}

func TestExpressHalvesEstimatedDays(t *testing.T) {
	engine := newEngine(t)

	// Wilaya 5 has a 3-day zone: express floors to 1.
	quote, err := engine.Quote(5, dec(1000), nil, 1, true, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.EstimatedDays != 1 {
		t.Errorf("express days = %d, want 1", quote.EstimatedDays)
	}

	// A 1-day zone never goes below 1.
	quote, err = engine.Quote(16, dec(1000), nil, 1, true, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.EstimatedDays != 1 {
		t.Errorf("express days for 1-day zone = %d, want 1", quote.EstimatedDays)
	}

	// Tamanrasset's 5-day zone halves to 2.
	quote, err = engine.Quote(11, dec(1000), nil, 1, true, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.EstimatedDays != 2 {
		t.Errorf("express days for 5-day zone = %d, want 2", quote.EstimatedDays)
	}
}

func TestFreeDeliveryInCapital(t *testing.T) {
	engine := newEngine(t)

	// Algiers, HOME, 6000 DA merchandise: free delivery, cost exactly zero
	// regardless of surcharges.
	quote, err := engine.Quote(16, dec(6000), decPtr(4), 12, true, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.FreeDelivery {
		t.Fatal("expected free delivery")
	}
	if !quote.DeliveryCost.IsZero() {
		t.Errorf("delivery cost = %s, want 0", quote.DeliveryCost)
	}
	if quote.IsRemoteArea {
		t.Error("Algiers must not be a remote area")
	}
}

func TestRemoteAreaDisqualifiesFreeDelivery(t *testing.T) {
	engine := newEngine(t)

	// Tamanrasset: home base cost 1200 exceeds the 800 DA remote threshold,
	// so even a 10000 DA order pays for delivery.
	quote, err := engine.Quote(11, dec(10000), nil, 1, false, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.IsRemoteArea {
		t.Fatal("expected remote area")
	}
	if quote.FreeDelivery {
		t.Fatal("remote area must not get free delivery")
	}
	if !quote.DeliveryCost.Equal(dec(1200)) {
		t.Errorf("delivery cost = %s, want 1200", quote.DeliveryCost)
	}
}

func TestThresholdBoundaries(t *testing.T) {
	engine := newEngine(t)

	// Exactly at the free-delivery threshold qualifies.
	quote, err := engine.Quote(16, dec(5000), nil, 1, false, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.FreeDelivery {
		t.Error("5000 DA exactly should qualify for free delivery")
	}

	// One dinar below does not.
	quote, err = engine.Quote(16, dec(4999), nil, 1, false, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.FreeDelivery {
		t.Error("4999 DA must not qualify for free delivery")
	}

	// A base cost of exactly 800 is not remote; the threshold is strict.
	quote, err = engine.Quote(5, dec(1000), nil, 1, false, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.IsRemoteArea {
		t.Error("base cost 800 exactly must not be remote")
	}
}

func TestFractionalWeightRoundsHalfUp(t *testing.T) {
	engine := newEngine(t)

	// 2.5 kg -> 1.5 extra kg -> 75 DA, exact.
	quote, err := engine.Quote(16, dec(1000), decPtr(2.5), 1, false, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.WeightSurcharge.Equal(dec(75)) {
		t.Errorf("weight surcharge = %s, want 75", quote.WeightSurcharge)
	}

	// 1.01 kg -> 0.5 DA surcharge -> 500.5 rounds half-up to 501.
	quote, err = engine.Quote(16, dec(1000), decPtr(1.01), 1, false, delivery.TypeHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.DeliveryCost.Equal(dec(501)) {
		t.Errorf("delivery cost = %s, want 501", quote.DeliveryCost)
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	engine := newEngine(t)

	first, err := engine.Quote(31, dec(3200), decPtr(2.3), 12, true, delivery.TypeStopDesk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Quote(31, dec(3200), decPtr(2.3), 12, true, delivery.TypeStopDesk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different quotes:\n%+v\n%+v", first, second)
	}
}
