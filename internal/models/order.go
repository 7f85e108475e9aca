package models

// Statuts possibles d'une commande. Aucune transition n'est validée :
// un PATCH accepte n'importe quelle valeur (comportement assumé du service).
const (
	OrderStatusPlaced         = "placed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out-for-delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

type CustomerInfo struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Order est un instantané figé du checkout : seuls status et updatedAt
// changent après création. Les totaux sont copiés tels quels du client.
type Order struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId,omitempty"`
	Items             []LineItem   `json:"items"`
	Subtotal          float64      `json:"subtotal"`
	Tax               float64      `json:"tax"`
	DeliveryFee       float64      `json:"deliveryFee"`
	Total             float64      `json:"total"`
	Status            string       `json:"status"`
	CustomerInfo      CustomerInfo `json:"customerInfo"`
	PaymentMethod     string       `json:"paymentMethod"`
	CreatedAt         string       `json:"createdAt"`
	UpdatedAt         string       `json:"updatedAt"`
	EstimatedDelivery string       `json:"estimatedDelivery,omitempty"`
}
