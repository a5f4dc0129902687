package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// ReducirInput entrada para ReducirStock (baja vendedor -> almacén).
type ReducirInput struct {
	ProductoID int64
	VendedorID int64
	Cantidad   int
}

// ReducirStock devuelve stock de un vendedor al almacén como unidad atómica:
// descuenta la asignación del vendedor, suma la cantidad al almacén y registra
// la transacción tipo Baja. La asignación debe existir y tener cantidad
// suficiente; ambas condiciones se verifican antes de cualquier escritura.
func (uc *UseCase) ReducirStock(ctx context.Context, in ReducirInput) error {
	if in.ProductoID <= 0 || in.VendedorID <= 0 || in.Cantidad <= 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		stockRepo repository.StockVendedorRepository,
		_ repository.EntregaRepository,
		transaccionRepo repository.TransaccionRepository,
		_ repository.VentaRepository,
	) error {
		// Mismo orden de bloqueo que EntregarStock (producto, luego asignación)
		// para no interbloquear operaciones concurrentes sobre el mismo par.
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		stock, err := stockRepo.GetForUpdate(in.VendedorID, in.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrStockNoAsignado
		}
		if stock.Cantidad < in.Cantidad {
			return domain.ErrInvalidInput
		}

		stock.Cantidad -= in.Cantidad
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		if err := productoRepo.UpdateCantidadAlmacen(in.ProductoID, producto.CantidadAlmacen+in.Cantidad); err != nil {
			return err
		}

		return transaccionRepo.Create(&entity.Transaccion{
			ProductoID: in.ProductoID,
			VendedorID: in.VendedorID,
			Cantidad:   in.Cantidad,
			Tipo:       entity.TransaccionBaja,
			Origen:     entity.UbicacionVendedor,
			Destino:    entity.UbicacionAlmacen,
			Fecha:      now,
		})
	})
}
