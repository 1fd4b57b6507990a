package domain

import "time"

// OrderStatus represents the lifecycle state of an order. Transitions happen
// on the backend; the portal only observes the current value.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDIENTE"
	OrderProcessing OrderStatus = "PROCESANDO"
	OrderCompleted  OrderStatus = "COMPLETADO"
	OrderCancelled  OrderStatus = "CANCELADO"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// DeliveryDetails carries the credentials handed over when a manual-delivery
// order completes.
type DeliveryDetails struct {
	ID      string `json:"id"`
	Account string `json:"usuarioCuenta"`
	Secret  string `json:"clave"`
	Note    string `json:"nota,omitempty"`
}

// Order is a purchase of a catalog service by a client.
type Order struct {
	ID            string           `json:"id"`
	UserID        string           `json:"usuarioId"`
	UserName      string           `json:"usuarioNombre"`
	ServiceID     string           `json:"servicioId"`
	ServiceName   string           `json:"servicioNombre"`
	Status        OrderStatus      `json:"estado"`
	CreatedAt     time.Time        `json:"fechaCreacion"`
	DeliveredAt   *time.Time       `json:"fechaEntrega"`
	EstimatedWait string           `json:"tiempoEstimadoEspera"`
	Delivery      *DeliveryDetails `json:"entrega"`
}
