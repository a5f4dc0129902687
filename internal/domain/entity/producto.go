package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo. CantidadAlmacen es el stock
// en poder del almacén central; el stock asignado a vendedores vive en StockVendedor.
// CantidadAlmacen nunca puede quedar negativa.
type Producto struct {
	ID              int64
	Nombre          string // único a nivel global
	Precio          decimal.Decimal
	CantidadAlmacen int
	PrecioCompraUSD *decimal.Decimal // costo de compra en dólares, opcional
	Foto            *string          // referencia a la imagen, opcional
	Destacado       bool
	SeccionID       *int64
	SubseccionID    *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
