package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPromocionRequest body para POST /api/promociones.
type CrearPromocionRequest struct {
	ProductoID  string          `json:"productoId"`
	PrecioPromo decimal.Decimal `json:"precioPromo"`
	Inicio      string          `json:"inicio"` // YYYY-MM-DD
	Fin         string          `json:"fin"`    // YYYY-MM-DD
}

// PromocionResponse promoción vigente o programada.
type PromocionResponse struct {
	ID          int64           `json:"id"`
	ProductoID  int64           `json:"productoId"`
	PrecioPromo decimal.Decimal `json:"precioPromo"`
	Inicio      time.Time       `json:"inicio"`
	Fin         time.Time       `json:"fin"`
}
