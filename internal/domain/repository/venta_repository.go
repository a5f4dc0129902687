package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// FiltroVentas filtros para el listado de ventas.
type FiltroVentas struct {
	VendedorID *int64
	ProductoID *int64
	Desde      *time.Time
	Hasta      *time.Time
	Limit      int
	Offset     int
}

// VentaRepository define el puerto de persistencia de ventas y su desglose por parámetro.
type VentaRepository interface {
	// Create persiste la venta y sus parámetros (si los hay) y asigna el ID.
	Create(v *entity.Venta) error
	// GetByIDAndVendedor devuelve la venta (con parámetros) o nil si no existe
	// o no pertenece al vendedor.
	GetByIDAndVendedor(id, vendedorID int64) (*entity.Venta, error)
	// Delete borra la venta y sus parámetros (acción compensatoria de anulación).
	Delete(id int64) error
	List(filtro FiltroVentas) ([]*entity.Venta, error)
}
