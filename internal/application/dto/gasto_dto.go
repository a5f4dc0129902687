package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearGastoRequest body para POST /api/gastos.
type CrearGastoRequest struct {
	VendedorID  *string         `json:"vendedorId,omitempty"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"` // YYYY-MM-DD
}

// GastoResponse gasto registrado.
type GastoResponse struct {
	ID          int64           `json:"id"`
	VendedorID  *int64          `json:"vendedorId,omitempty"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
}
