package domain

import "time"

// Service is a purchasable catalog item. Immutable from the portal's point
// of view within a view's lifetime.
type Service struct {
	ID               string    `json:"id"`
	Name             string    `json:"nombre"`
	Description      string    `json:"descripcion"`
	PriceCoins       int       `json:"precioMonedas"`
	RequiresDelivery bool      `json:"requiereEntrega"`
	Active           bool      `json:"activo"`
	WaitMinutes      string    `json:"tiempoEsperaMinutos"`
	CreatedAt        time.Time `json:"fechaCreacion"`
	ImageURL         string    `json:"imgUrl"`
}
