package reportes

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// FilaReporte una línea del reporte de ventas.
type FilaReporte struct {
	Fecha          time.Time
	Producto       string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
}

// ReporteVentas datos de entrada para el generador de PDF.
type ReporteVentas struct {
	VendedorID   *int64
	Desde        time.Time
	Hasta        time.Time
	Filas        []FilaReporte
	TotalGeneral decimal.Decimal
}

// VentasPDFGenerator puerto del generador del PDF del reporte.
type VentasPDFGenerator interface {
	GenerarReporteVentas(ctx context.Context, reporte *ReporteVentas) ([]byte, error)
}

// PDFUseCase genera el reporte de ventas en PDF para un rango de fechas,
// opcionalmente filtrado por vendedor.
type PDFUseCase struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	generator    VentasPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository, generator VentasPDFGenerator) *PDFUseCase {
	return &PDFUseCase{ventaRepo: ventaRepo, productoRepo: productoRepo, generator: generator}
}

// GenerarReporte arma las filas del reporte y delega la maquetación al generador.
func (uc *PDFUseCase) GenerarReporte(ctx context.Context, vendedorID *int64, desde, hasta time.Time) ([]byte, error) {
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	ventas, err := uc.ventaRepo.List(repository.FiltroVentas{
		VendedorID: vendedorID,
		Desde:      &desde,
		Hasta:      &hasta,
		Limit:      1000,
	})
	if err != nil {
		return nil, err
	}

	nombres := make(map[int64]string)
	reporte := &ReporteVentas{VendedorID: vendedorID, Desde: desde, Hasta: hasta, TotalGeneral: decimal.Zero}
	for _, v := range ventas {
		nombre, ok := nombres[v.ProductoID]
		if !ok {
			producto, err := uc.productoRepo.GetByID(v.ProductoID)
			if err != nil {
				return nil, err
			}
			if producto != nil {
				nombre = producto.Nombre
			}
			nombres[v.ProductoID] = nombre
		}
		reporte.Filas = append(reporte.Filas, FilaReporte{
			Fecha:          v.Fecha,
			Producto:       nombre,
			Cantidad:       v.Cantidad,
			PrecioUnitario: v.PrecioUnitario,
			Total:          v.Total,
		})
		reporte.TotalGeneral = reporte.TotalGeneral.Add(v.Total)
	}

	return uc.generator.GenerarReporteVentas(ctx, reporte)
}
