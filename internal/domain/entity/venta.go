package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta registra una venta de un vendedor contra su stock asignado.
// Total = Cantidad * PrecioUnitario. Las ventas solo se borran como acción
// compensatoria al anularlas (restituyendo el stock del vendedor).
type Venta struct {
	ID             int64
	ProductoID     int64
	VendedorID     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
	Fecha          time.Time
	Parametros     []VentaParametro // desglose por parámetro, opcional
}

// VentaParametro es el desglose de una venta por parámetro (talla, color, ...).
type VentaParametro struct {
	VentaID  int64
	Nombre   string
	Cantidad int
}
