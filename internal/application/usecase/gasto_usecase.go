package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// GastoUseCase registro y consulta de gastos.
type GastoUseCase struct {
	repo repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(repo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{repo: repo}
}

// Crear registra un gasto.
func (uc *GastoUseCase) Crear(vendedorID *int64, in dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	if in.Descripcion == "" || in.Monto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	g := &entity.Gasto{
		VendedorID:  vendedorID,
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Fecha:       fecha,
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGastoResponse(g), nil
}

// List lista gastos con filtros opcionales por vendedor y rango de fechas.
func (uc *GastoUseCase) List(vendedorID *int64, desde, hasta *time.Time, limit, offset int) ([]dto.GastoResponse, error) {
	gastos, err := uc.repo.List(vendedorID, desde, hasta, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		out = append(out, *toGastoResponse(g))
	}
	return out, nil
}

func toGastoResponse(g *entity.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID,
		VendedorID:  g.VendedorID,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Fecha:       g.Fecha,
	}
}
