package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price in Algerian dinars, whole units only.
func FormatPrice(price interface{}) string {
	switch v := price.(type) {
	case decimal.Decimal:
		return fmt.Sprintf("%s DA", v.StringFixed(0))
	case *decimal.Decimal:
		if v != nil {
			return fmt.Sprintf("%s DA", v.StringFixed(0))
		}
		return "0 DA"
	case int, int64, float32, float64:
		return fmt.Sprintf("%v DA", v)
	default:
		return "0 DA"
	}
}
