package ledger

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// ResumenProducto desglose de cantidades de un producto: almacén, suma de
// asignaciones a vendedores y el total conservado.
type ResumenProducto struct {
	ProductoID       int64
	CantidadAlmacen  int
	CantidadAsignada int
}

// Total cantidad conservada (almacén + asignaciones). Solo las ventas la reducen.
func (r ResumenProducto) Total() int {
	return r.CantidadAlmacen + r.CantidadAsignada
}

// StockDeVendedor devuelve la asignación de un vendedor para un producto con
// su desglose por parámetro. ErrStockNoAsignado si no existe.
func (uc *UseCase) StockDeVendedor(vendedorID, productoID int64) (*entity.StockVendedor, []*entity.ParametroStock, error) {
	if vendedorID <= 0 || productoID <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(vendedorID, productoID)
	if err != nil {
		return nil, nil, err
	}
	if stock == nil {
		return nil, nil, domain.ErrStockNoAsignado
	}
	params, err := uc.stockRepo.ListParametros(vendedorID, productoID)
	if err != nil {
		return nil, nil, err
	}
	return stock, params, nil
}

// ListStockDeVendedor lista todas las asignaciones de un vendedor.
func (uc *UseCase) ListStockDeVendedor(vendedorID int64) ([]*entity.StockVendedor, error) {
	if vendedorID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.ListByVendedor(vendedorID)
}

// StockPorProductos devuelve las asignaciones de un vendedor para un conjunto
// de productos en una sola consulta (array binding).
func (uc *UseCase) StockPorProductos(vendedorID int64, productoIDs []int64) ([]*entity.StockVendedor, error) {
	if vendedorID <= 0 || len(productoIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.ListByProductoIDs(vendedorID, productoIDs)
}

// HistorialEntregas lista las entregas recibidas por un vendedor, opcionalmente
// acotadas por rango de fechas, más recientes primero.
func (uc *UseCase) HistorialEntregas(vendedorID int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Entrega, error) {
	if vendedorID <= 0 || limit <= 0 || offset < 0 {
		return nil, domain.ErrInvalidInput
	}
	if desde != nil && hasta != nil && hasta.Before(*desde) {
		return nil, domain.ErrInvalidInput
	}
	return uc.entregaRepo.ListByVendedor(vendedorID, desde, hasta, limit, offset)
}

// HistorialTransacciones lista los movimientos de stock (entregas y bajas) de
// un producto, opcionalmente acotados por rango de fechas.
func (uc *UseCase) HistorialTransacciones(productoID int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Transaccion, error) {
	if productoID <= 0 || limit <= 0 || offset < 0 {
		return nil, domain.ErrInvalidInput
	}
	if desde != nil && hasta != nil && hasta.Before(*desde) {
		return nil, domain.ErrInvalidInput
	}
	return uc.transaccionRepo.ListByProducto(productoID, desde, hasta, limit, offset)
}

// ResumenDeProducto calcula el desglose almacén/asignado de un producto, útil
// para verificar la conservación de cantidades.
func (uc *UseCase) ResumenDeProducto(productoID int64) (*ResumenProducto, error) {
	if productoID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	asignado, err := uc.stockRepo.SumByProducto(productoID)
	if err != nil {
		return nil, err
	}
	return &ResumenProducto{
		ProductoID:       productoID,
		CantidadAlmacen:  producto.CantidadAlmacen,
		CantidadAsignada: asignado,
	}, nil
}
