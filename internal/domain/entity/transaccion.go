package entity

import "time"

// Tipos de transacción de stock.
const (
	TransaccionEntrega = "Entrega" // almacén -> vendedor
	TransaccionBaja    = "Baja"    // vendedor -> almacén (reducir)
)

// Ubicaciones origen/destino de una transacción.
const (
	UbicacionAlmacen  = "Almacen"
	UbicacionVendedor = "Vendedor"
)

// Transaccion es el registro inmutable de un movimiento de stock entre el
// almacén y un vendedor, distinto del registro de entregas.
type Transaccion struct {
	ID         int64
	ProductoID int64
	VendedorID int64
	Cantidad   int
	Tipo       string // Entrega | Baja
	Origen     string
	Destino    string
	Fecha      time.Time
}
