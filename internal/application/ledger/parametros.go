package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// CantidadesInput entrada para ActualizarCantidades (set absoluto, no delta).
// Con Parametros: cada parámetro se fija a su cantidad y el total de la
// asignación se recalcula como la suma. Sin Parametros: NuevaCantidad fija el
// total directamente.
type CantidadesInput struct {
	VendedorID    int64
	ProductoID    int64
	NuevaCantidad *int
	Parametros    []ParametroCantidad
}

// ActualizarCantidades fija el estado completo de la asignación de un
// vendedor. Los llamadores deben enviar el estado nuevo completo; la operación
// no aplica deltas.
func (uc *UseCase) ActualizarCantidades(ctx context.Context, in CantidadesInput) error {
	if in.VendedorID <= 0 || in.ProductoID <= 0 {
		return domain.ErrInvalidInput
	}
	if len(in.Parametros) == 0 && in.NuevaCantidad == nil {
		return domain.ErrInvalidInput
	}
	if len(in.Parametros) > 0 && !validarParametros(in.Parametros, 0) {
		return domain.ErrInvalidInput
	}
	if in.NuevaCantidad != nil && *in.NuevaCantidad < 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductoRepository,
		stockRepo repository.StockVendedorRepository,
		_ repository.EntregaRepository,
		_ repository.TransaccionRepository,
		_ repository.VentaRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(in.VendedorID, in.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			stock = &entity.StockVendedor{VendedorID: in.VendedorID, ProductoID: in.ProductoID}
		}

		// Set absoluto: el estado anterior de parámetros se reemplaza por
		// completo, no se mezcla con el nuevo.
		if err := stockRepo.DeleteParametros(in.VendedorID, in.ProductoID); err != nil {
			return err
		}

		if len(in.Parametros) > 0 {
			total := 0
			for _, p := range in.Parametros {
				if err := stockRepo.UpsertParametro(&entity.ParametroStock{
					VendedorID: in.VendedorID,
					ProductoID: in.ProductoID,
					Nombre:     p.Nombre,
					Cantidad:   p.Cantidad,
				}); err != nil {
					return err
				}
				total += p.Cantidad
			}
			stock.Cantidad = total
		} else {
			stock.Cantidad = *in.NuevaCantidad
		}

		stock.UpdatedAt = now
		return stockRepo.Upsert(stock)
	})
}
