package entity

import "time"

// StockVendedor es la asignación de stock de un producto a un vendedor.
// Se crea con la primera entrega y su cantidad nunca puede quedar negativa.
type StockVendedor struct {
	VendedorID int64
	ProductoID int64
	Cantidad   int
	UpdatedAt  time.Time
}

// ParametroStock es la subdivisión por parámetro (talla, color, ...) de una
// asignación. Cuando existen parámetros, la suma de sus cantidades debe ser
// igual a la cantidad total del StockVendedor correspondiente.
type ParametroStock struct {
	ID         int64
	VendedorID int64
	ProductoID int64
	Nombre     string
	Cantidad   int
}
