package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// AnularVenta deshace una venta: restituye el stock del vendedor por
// exactamente la cantidad vendida (por parámetro cuando hay desglose) y borra
// la venta, todo en una única transacción.
func (uc *UseCase) AnularVenta(ctx context.Context, ventaID, vendedorID int64) error {
	if ventaID <= 0 || vendedorID <= 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductoRepository,
		stockRepo repository.StockVendedorRepository,
		_ repository.EntregaRepository,
		_ repository.TransaccionRepository,
		ventaRepo repository.VentaRepository,
	) error {
		venta, err := ventaRepo.GetByIDAndVendedor(ventaID, vendedorID)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrVentaNotFound
		}

		stock, err := stockRepo.GetForUpdate(vendedorID, venta.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			// La asignación pudo llegar a cero y no existir aún como fila; la
			// restitución la recrea.
			stock = &entity.StockVendedor{VendedorID: vendedorID, ProductoID: venta.ProductoID}
		}

		if len(venta.Parametros) > 0 {
			params, err := stockRepo.ListParametrosForUpdate(vendedorID, venta.ProductoID)
			if err != nil {
				return err
			}
			porNombre := make(map[string]*entity.ParametroStock, len(params))
			for _, p := range params {
				porNombre[p.Nombre] = p
			}
			for _, vp := range venta.Parametros {
				actual, ok := porNombre[vp.Nombre]
				if !ok {
					actual = &entity.ParametroStock{
						VendedorID: vendedorID,
						ProductoID: venta.ProductoID,
						Nombre:     vp.Nombre,
					}
				}
				actual.Cantidad += vp.Cantidad
				if err := stockRepo.UpsertParametro(actual); err != nil {
					return err
				}
			}
		}

		stock.Cantidad += venta.Cantidad
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		return ventaRepo.Delete(ventaID)
	})
}
