package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// VentaInput entrada para RegistrarVenta. VendedorID sale del token de sesión.
// Si la asignación tiene parámetros, Parametros es obligatorio y su suma debe
// ser igual a Cantidad.
type VentaInput struct {
	ProductoID int64
	VendedorID int64
	Cantidad   int
	Fecha      time.Time
	Parametros []ParametroCantidad
}

// RegistrarVenta inserta la venta y descuenta el stock del vendedor en la
// misma transacción. El precio unitario sale del producto, o de la promoción
// vigente en la fecha de la venta si existe una.
func (uc *UseCase) RegistrarVenta(ctx context.Context, in VentaInput) (*entity.Venta, error) {
	if in.ProductoID <= 0 || in.VendedorID <= 0 || in.Cantidad <= 0 || in.Fecha.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Parametros) > 0 {
		if !validarParametros(in.Parametros, 1) {
			return nil, domain.ErrInvalidInput
		}
		suma := 0
		for _, p := range in.Parametros {
			suma += p.Cantidad
		}
		if suma != in.Cantidad {
			return nil, domain.ErrInvalidInput
		}
	}

	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	precio := producto.Precio
	promo, err := uc.promocionRepo.GetActivaByProducto(in.ProductoID, in.Fecha)
	if err != nil {
		return nil, err
	}
	if promo != nil {
		precio = promo.PrecioPromo
	}

	venta := &entity.Venta{
		ProductoID:     in.ProductoID,
		VendedorID:     in.VendedorID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: precio,
		Total:          precio.Mul(decimal.NewFromInt(int64(in.Cantidad))),
		Fecha:          in.Fecha,
	}
	for _, p := range in.Parametros {
		venta.Parametros = append(venta.Parametros, entity.VentaParametro{Nombre: p.Nombre, Cantidad: p.Cantidad})
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductoRepository,
		stockRepo repository.StockVendedorRepository,
		_ repository.EntregaRepository,
		_ repository.TransaccionRepository,
		ventaRepo repository.VentaRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(in.VendedorID, in.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrStockNoAsignado
		}
		if stock.Cantidad < in.Cantidad {
			return domain.ErrInsufficientStock
		}

		params, err := stockRepo.ListParametrosForUpdate(in.VendedorID, in.ProductoID)
		if err != nil {
			return err
		}
		if len(params) == 0 && len(in.Parametros) > 0 {
			// Un desglose solo es válido contra una asignación con parámetros.
			return domain.ErrInvalidInput
		}
		if len(params) > 0 {
			// Asignación desglosada: se exige desglose explícito en la venta
			// en lugar de adivinar una distribución proporcional.
			if len(in.Parametros) == 0 {
				return domain.ErrInvalidInput
			}
			porNombre := make(map[string]*entity.ParametroStock, len(params))
			for _, p := range params {
				porNombre[p.Nombre] = p
			}
			for _, vp := range in.Parametros {
				actual, ok := porNombre[vp.Nombre]
				if !ok {
					return domain.ErrInvalidInput
				}
				if actual.Cantidad < vp.Cantidad {
					return domain.ErrInsufficientStock
				}
				actual.Cantidad -= vp.Cantidad
				if err := stockRepo.UpsertParametro(actual); err != nil {
					return err
				}
			}
		}

		stock.Cantidad -= in.Cantidad
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		return ventaRepo.Create(venta)
	})
	if err != nil {
		return nil, err
	}
	return venta, nil
}
