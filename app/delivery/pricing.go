package delivery

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/oussama2210/intimate-essentials-shop/app/location"
)

// Delivery types supported by the carrier network.
const (
	TypeHome     = "HOME"
	TypeStopDesk = "STOP_DESK"
)

var (
	ErrWilayaNotFound      = errors.New("delivery: wilaya not found")
	ErrNoActiveZone        = errors.New("delivery: no active delivery zone")
	ErrInvalidDeliveryType = errors.New("delivery: invalid delivery type")
)

// Config holds the pricing constants. The legacy system carried three copies
// of this calculation with drifting constants; this is the single canonical
// set, overridable through the environment.
type Config struct {
	// FreeDeliveryThreshold is the merchandise total (DA) at which delivery
	// becomes free, unless the destination is a remote area.
	FreeDeliveryThreshold decimal.Decimal
	// WeightFreeAllowanceKg is the weight included in the base cost.
	WeightFreeAllowanceKg decimal.Decimal
	// WeightSurchargePerKg is charged per kg above the free allowance.
	WeightSurchargePerKg decimal.Decimal
	// ItemSurchargeThreshold is the number of units included in the base cost.
	ItemSurchargeThreshold int
	// ItemSurchargePerUnit is charged per unit above the threshold.
	ItemSurchargePerUnit decimal.Decimal
	// ExpressRate is the express surcharge as a fraction of the base cost.
	// It deliberately applies to the base cost only, not to the weight or
	// item surcharges; see DESIGN.md before changing this.
	ExpressRate decimal.Decimal
	// RemoteAreaThreshold: a destination whose base cost exceeds this value
	// is remote and never qualifies for free delivery.
	RemoteAreaThreshold decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		FreeDeliveryThreshold:  decimal.NewFromInt(5000),
		WeightFreeAllowanceKg:  decimal.NewFromInt(1),
		WeightSurchargePerKg:   decimal.NewFromInt(50),
		ItemSurchargeThreshold: 10,
		ItemSurchargePerUnit:   decimal.NewFromInt(25),
		ExpressRate:            decimal.NewFromFloat(0.5),
		RemoteAreaThreshold:    decimal.NewFromInt(800),
	}
}

// Quote is the full, user-visible cost breakdown for one delivery. It is
// computed fresh per request and never persisted as-is; order creation always
// recomputes it rather than trusting a quote supplied by the client.
type Quote struct {
	WilayaID              int             `json:"wilayaId"`
	WilayaName            string          `json:"wilayaName"`
	WilayaCode            string          `json:"wilayaCode"`
	DeliveryType          string          `json:"deliveryType"`
	BaseCost              decimal.Decimal `json:"baseCost"`
	WeightSurcharge       decimal.Decimal `json:"weightSurcharge"`
	ItemSurcharge         decimal.Decimal `json:"itemSurcharge"`
	ExpressSurcharge      decimal.Decimal `json:"expressSurcharge"`
	DeliveryCost          decimal.Decimal `json:"deliveryCost"`
	FreeDelivery          bool            `json:"freeDelivery"`
	FreeDeliveryThreshold decimal.Decimal `json:"freeDeliveryThreshold"`
	IsExpress             bool            `json:"isExpress"`
	IsRemoteArea          bool            `json:"isRemoteArea"`
	EstimatedDays         int             `json:"estimatedDays"`
}

// Engine computes delivery quotes against the static location catalog.
// It is pure: no I/O, no hidden state, identical inputs give identical quotes.
type Engine struct {
	catalog *location.Catalog
	cfg     Config
}

func NewEngine(catalog *location.Catalog, cfg Config) *Engine {
	return &Engine{catalog: catalog, cfg: cfg}
}

// Quote prices a delivery to the given wilaya.
//
// orderTotal is the merchandise total, weightKg is optional (nil means the
// parcel fits the free allowance) and itemCount is the total number of units
// ordered. Monetary results are rounded half-up to whole dinars.
func (e *Engine) Quote(wilayaID int, orderTotal decimal.Decimal, weightKg *decimal.Decimal, itemCount int, express bool, deliveryType string) (*Quote, error) {
	if deliveryType == "" {
		deliveryType = TypeHome
	}
	if deliveryType != TypeHome && deliveryType != TypeStopDesk {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeliveryType, deliveryType)
	}

	wilaya, err := e.catalog.WilayaByID(wilayaID)
	if err != nil {
		return nil, ErrWilayaNotFound
	}

	zone, err := e.catalog.ActiveZone(wilayaID)
	if err != nil {
		return nil, ErrNoActiveZone
	}

	baseCost := wilaya.HomeDeliveryCost
	if deliveryType == TypeStopDesk {
		baseCost = wilaya.OfficeDeliveryCost
	}

	weightSurcharge := e.weightSurcharge(weightKg)
	itemSurcharge := e.itemSurcharge(itemCount)

	expressSurcharge := decimal.Zero
	if express {
		expressSurcharge = baseCost.Mul(e.cfg.ExpressRate)
	}

	isRemoteArea := baseCost.GreaterThan(e.cfg.RemoteAreaThreshold)
	freeDelivery := orderTotal.GreaterThanOrEqual(e.cfg.FreeDeliveryThreshold) && !isRemoteArea

	deliveryCost := decimal.Zero
	if !freeDelivery {
		deliveryCost = baseCost.Add(weightSurcharge).Add(itemSurcharge).Add(expressSurcharge).Round(0)
	}

	estimatedDays := zone.EstimatedDays
	if express {
		estimatedDays = estimatedDays / 2
		if estimatedDays < 1 {
			estimatedDays = 1
		}
	}

	return &Quote{
		WilayaID:              wilaya.ID,
		WilayaName:            wilaya.Name,
		WilayaCode:            wilaya.Code,
		DeliveryType:          deliveryType,
		BaseCost:              baseCost.Round(0),
		WeightSurcharge:       weightSurcharge.Round(0),
		ItemSurcharge:         itemSurcharge.Round(0),
		ExpressSurcharge:      expressSurcharge.Round(0),
		DeliveryCost:          deliveryCost,
		FreeDelivery:          freeDelivery,
		FreeDeliveryThreshold: e.cfg.FreeDeliveryThreshold,
		IsExpress:             express,
		IsRemoteArea:          isRemoteArea,
		EstimatedDays:         estimatedDays,
	}, nil
}

func (e *Engine) weightSurcharge(weightKg *decimal.Decimal) decimal.Decimal {
	if weightKg == nil || weightKg.LessThanOrEqual(e.cfg.WeightFreeAllowanceKg) {
		return decimal.Zero
	}
	extra := weightKg.Sub(e.cfg.WeightFreeAllowanceKg)
	return extra.Mul(e.cfg.WeightSurchargePerKg)
}

func (e *Engine) itemSurcharge(itemCount int) decimal.Decimal {
	if itemCount <= e.cfg.ItemSurchargeThreshold {
		return decimal.Zero
	}
	extra := int64(itemCount - e.cfg.ItemSurchargeThreshold)
	return decimal.NewFromInt(extra).Mul(e.cfg.ItemSurchargePerUnit)
}
