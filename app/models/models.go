package models

type Model struct {
	Model interface{}
}

func RegisterModels() []Model {
	return []Model{
		{Model: Wilaya{}},
		{Model: Baladiya{}},
		{Model: DeliveryZone{}},
		{Model: Product{}},
		{Model: Customer{}},
		{Model: Order{}},
		{Model: OrderItem{}},
		{Model: AdminUser{}},
	}
}
