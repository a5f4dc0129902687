package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaRequest body para POST /api/ventas. El vendedor sale del token de sesión.
type VentaRequest struct {
	ProductoID string              `json:"productoId"`
	Cantidad   string              `json:"cantidad"`
	Fecha      string              `json:"fecha"` // YYYY-MM-DD
	Parametros []ParametroCantidad `json:"parametros,omitempty"`
}

// VentaResponse venta registrada.
type VentaResponse struct {
	ID             int64               `json:"id"`
	ProductoID     int64               `json:"productoId"`
	VendedorID     int64               `json:"vendedorId"`
	Cantidad       int                 `json:"cantidad"`
	PrecioUnitario decimal.Decimal     `json:"precioUnitario"`
	Total          decimal.Decimal     `json:"total"`
	Fecha          time.Time           `json:"fecha"`
	Parametros     []ParametroCantidad `json:"parametros,omitempty"`
}

// VentaListResponse listado de ventas.
type VentaListResponse struct {
	Ventas []VentaResponse `json:"ventas"`
	Page   PageResponse    `json:"page"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
