package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// PromocionUseCase CRUD de promociones de precio.
type PromocionUseCase struct {
	repo         repository.PromocionRepository
	productoRepo repository.ProductoRepository
}

// NewPromocionUseCase construye el caso de uso.
func NewPromocionUseCase(repo repository.PromocionRepository, productoRepo repository.ProductoRepository) *PromocionUseCase {
	return &PromocionUseCase{repo: repo, productoRepo: productoRepo}
}

// Crear crea una promoción para un producto. El rango de fechas debe ser
// válido y el precio promocional no negativo.
func (uc *PromocionUseCase) Crear(productoID int64, in dto.CrearPromocionRequest) (*dto.PromocionResponse, error) {
	inicio, err := time.Parse("2006-01-02", in.Inicio)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	fin, err := time.Parse("2006-01-02", in.Fin)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if fin.Before(inicio) || in.PrecioPromo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	p := &entity.Promocion{
		ProductoID:  productoID,
		PrecioPromo: in.PrecioPromo,
		Inicio:      inicio,
		Fin:         fin,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPromocionResponse(p), nil
}

// List lista todas las promociones.
func (uc *PromocionUseCase) List() ([]dto.PromocionResponse, error) {
	promos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromocionResponse, 0, len(promos))
	for _, p := range promos {
		out = append(out, *toPromocionResponse(p))
	}
	return out, nil
}

// Eliminar borra una promoción.
func (uc *PromocionUseCase) Eliminar(id int64) error {
	return uc.repo.Delete(id)
}

func toPromocionResponse(p *entity.Promocion) *dto.PromocionResponse {
	return &dto.PromocionResponse{
		ID:          p.ID,
		ProductoID:  p.ProductoID,
		PrecioPromo: p.PrecioPromo,
		Inicio:      p.Inicio,
		Fin:         p.Fin,
	}
}
