package repository

import "github.com/tu-usuario/almacen-ventas/internal/domain/entity"

// StockVendedorRepository define el puerto para las asignaciones de stock por
// vendedor y sus parámetros. Se usa dentro de transacciones para garantizar
// la conservación de cantidades.
type StockVendedorRepository interface {
	// Get devuelve la asignación o nil si no existe.
	Get(vendedorID, productoID int64) (*entity.StockVendedor, error)
	// GetForUpdate bloquea la fila de la asignación (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(vendedorID, productoID int64) (*entity.StockVendedor, error)
	Upsert(stock *entity.StockVendedor) error
	ListByVendedor(vendedorID int64) ([]*entity.StockVendedor, error)
	// ListByProductoIDs devuelve las asignaciones del vendedor para un conjunto
	// de productos (binding nativo de array, producto_id = ANY($2)).
	ListByProductoIDs(vendedorID int64, productoIDs []int64) ([]*entity.StockVendedor, error)
	// SumByProducto suma el stock asignado a todos los vendedores para un producto.
	SumByProducto(productoID int64) (int, error)

	ListParametros(vendedorID, productoID int64) ([]*entity.ParametroStock, error)
	// ListParametrosForUpdate bloquea las filas de parámetros de la asignación.
	ListParametrosForUpdate(vendedorID, productoID int64) ([]*entity.ParametroStock, error)
	UpsertParametro(p *entity.ParametroStock) error
	// DeleteParametros borra todos los parámetros de la asignación; un set
	// absoluto los reemplaza por el estado nuevo completo.
	DeleteParametros(vendedorID, productoID int64) error
}
