package delivery

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// ConfigFromEnv returns the default pricing constants with any environment
// overrides applied. Unparseable values fall back to the default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.FreeDeliveryThreshold = envDecimal("FREE_DELIVERY_THRESHOLD", cfg.FreeDeliveryThreshold)
	cfg.RemoteAreaThreshold = envDecimal("REMOTE_AREA_THRESHOLD", cfg.RemoteAreaThreshold)
	cfg.WeightSurchargePerKg = envDecimal("WEIGHT_SURCHARGE_PER_KG", cfg.WeightSurchargePerKg)
	cfg.ItemSurchargePerUnit = envDecimal("ITEM_SURCHARGE_PER_UNIT", cfg.ItemSurchargePerUnit)
	cfg.ItemSurchargeThreshold = envInt("ITEM_SURCHARGE_THRESHOLD", cfg.ItemSurchargeThreshold)
	cfg.ExpressRate = envDecimal("EXPRESS_RATE", cfg.ExpressRate)
	return cfg
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
