package consts

// Order lifecycle statuses. Orders always start as PENDING and are moved
// forward by an admin; CANCELLED is reachable from any non-terminal status.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

const PaymentMethodCashOnDelivery = "CASH_ON_DELIVERY"

// orderTransitions is the allowed status graph. The legacy system let an
// admin set any status from any other; that is treated as a bug here.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func IsOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
