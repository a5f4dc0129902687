package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// EntregaInput entrada para EntregarStock.
type EntregaInput struct {
	ProductoID int64
	VendedorID int64
	Cantidad   int
}

// EntregarStock mueve stock del almacén a un vendedor como unidad atómica:
// registra la entrega, descuenta la cantidad del almacén y suma (o crea) la
// asignación del vendedor, dejando además la transacción tipo Entrega en el
// historial. El almacén debe tener cantidad suficiente; si no, la operación
// se rechaza sin efecto alguno.
func (uc *UseCase) EntregarStock(ctx context.Context, in EntregaInput) (*entity.Entrega, error) {
	if in.ProductoID <= 0 || in.VendedorID <= 0 || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entrega := &entity.Entrega{
		ProductoID: in.ProductoID,
		VendedorID: in.VendedorID,
		Cantidad:   in.Cantidad,
		Fecha:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		stockRepo repository.StockVendedorRepository,
		entregaRepo repository.EntregaRepository,
		transaccionRepo repository.TransaccionRepository,
		_ repository.VentaRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) para serializar
		// entregas concurrentes del mismo producto.
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if producto.CantidadAlmacen < in.Cantidad {
			return domain.ErrInsufficientStock
		}

		if err := entregaRepo.Create(entrega); err != nil {
			return err
		}
		if err := productoRepo.UpdateCantidadAlmacen(in.ProductoID, producto.CantidadAlmacen-in.Cantidad); err != nil {
			return err
		}

		stock, err := stockRepo.GetForUpdate(in.VendedorID, in.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			stock = &entity.StockVendedor{VendedorID: in.VendedorID, ProductoID: in.ProductoID}
		}
		stock.Cantidad += in.Cantidad
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		return transaccionRepo.Create(&entity.Transaccion{
			ProductoID: in.ProductoID,
			VendedorID: in.VendedorID,
			Cantidad:   in.Cantidad,
			Tipo:       entity.TransaccionEntrega,
			Origen:     entity.UbicacionAlmacen,
			Destino:    entity.UbicacionVendedor,
			Fecha:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return entrega, nil
}
