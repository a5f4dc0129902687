package usecase

import (
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// VentaUseCase lado de lectura de ventas (el registro y la anulación viven en
// el libro de stock, ledger.UseCase).
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// List lista ventas con filtros opcionales.
func (uc *VentaUseCase) List(filtro repository.FiltroVentas) (*dto.VentaListResponse, error) {
	ventas, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := &dto.VentaListResponse{
		Ventas: make([]dto.VentaResponse, 0, len(ventas)),
		Page:   dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}
	for _, v := range ventas {
		out.Ventas = append(out.Ventas, *ToVentaResponse(v))
	}
	return out, nil
}

// ToVentaResponse convierte la entidad a su representación HTTP.
func ToVentaResponse(v *entity.Venta) *dto.VentaResponse {
	out := &dto.VentaResponse{
		ID:             v.ID,
		ProductoID:     v.ProductoID,
		VendedorID:     v.VendedorID,
		Cantidad:       v.Cantidad,
		PrecioUnitario: v.PrecioUnitario,
		Total:          v.Total,
		Fecha:          v.Fecha,
	}
	for _, p := range v.Parametros {
		out.Parametros = append(out.Parametros, dto.ParametroCantidad{Nombre: p.Nombre, Cantidad: p.Cantidad})
	}
	return out
}
