package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Nombre          string           `json:"nombre"`
	Precio          decimal.Decimal  `json:"precio"`
	CantidadAlmacen int              `json:"cantidadAlmacen"`
	PrecioCompraUSD *decimal.Decimal `json:"precioCompraUsd,omitempty"`
	Foto            *string          `json:"foto,omitempty"`
	Destacado       bool             `json:"destacado"`
	SeccionID       *int64           `json:"seccionId,omitempty"`
	SubseccionID    *int64           `json:"subseccionId,omitempty"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id. Campos nil no se tocan.
type ActualizarProductoRequest struct {
	Nombre          *string          `json:"nombre,omitempty"`
	Precio          *decimal.Decimal `json:"precio,omitempty"`
	PrecioCompraUSD *decimal.Decimal `json:"precioCompraUsd,omitempty"`
	Foto            *string          `json:"foto,omitempty"`
	Destacado       *bool            `json:"destacado,omitempty"`
	SeccionID       *int64           `json:"seccionId,omitempty"`
	SubseccionID    *int64           `json:"subseccionId,omitempty"`
}

// ProductoResponse producto del catálogo.
type ProductoResponse struct {
	ID              int64            `json:"id"`
	Nombre          string           `json:"nombre"`
	Precio          decimal.Decimal  `json:"precio"`
	CantidadAlmacen int              `json:"cantidadAlmacen"`
	PrecioCompraUSD *decimal.Decimal `json:"precioCompraUsd,omitempty"`
	Foto            *string          `json:"foto,omitempty"`
	Destacado       bool             `json:"destacado"`
	SeccionID       *int64           `json:"seccionId,omitempty"`
	SubseccionID    *int64           `json:"subseccionId,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Productos []ProductoResponse `json:"productos"`
	Page      PageResponse       `json:"page"`
}
