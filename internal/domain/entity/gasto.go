package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto registra un gasto operativo, opcionalmente atribuido a un vendedor.
type Gasto struct {
	ID          int64
	VendedorID  *int64
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
}
