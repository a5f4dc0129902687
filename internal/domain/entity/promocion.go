package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion define un precio promocional para un producto dentro de un rango de fechas.
type Promocion struct {
	ID          int64
	ProductoID  int64
	PrecioPromo decimal.Decimal
	Inicio      time.Time
	Fin         time.Time
}

// Activa indica si la promoción cubre la fecha dada.
func (p Promocion) Activa(fecha time.Time) bool {
	return !fecha.Before(p.Inicio) && !fecha.After(p.Fin)
}
