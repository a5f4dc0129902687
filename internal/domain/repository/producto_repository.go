package repository

import "github.com/tu-usuario/almacen-ventas/internal/domain/entity"

// FiltroProductos filtros para el listado de productos.
type FiltroProductos struct {
	Busqueda  string // búsqueda por nombre, insensible a acentos
	SeccionID *int64
	Destacado *bool
	Limit     int
	Offset    int
}

// ProductoRepository define el puerto de persistencia del catálogo de productos.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	GetByNombre(nombre string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de una transacción.
	GetForUpdate(id int64) (*entity.Producto, error)
	List(filtro FiltroProductos) ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	// UpdateCantidadAlmacen fija la cantidad en almacén (valor absoluto, ya calculado por el caso de uso).
	UpdateCantidadAlmacen(id int64, cantidad int) error
	Delete(id int64) error
}
