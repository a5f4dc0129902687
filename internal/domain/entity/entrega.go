package entity

import "time"

// Entrega es el registro inmutable de una entrega de stock del almacén a un vendedor.
type Entrega struct {
	ID         int64
	ProductoID int64
	VendedorID int64
	Cantidad   int
	Fecha      time.Time
}
