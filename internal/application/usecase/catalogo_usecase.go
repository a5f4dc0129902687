package usecase

import (
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// CatalogoUseCase CRUD de secciones y subsecciones.
type CatalogoUseCase struct {
	repo repository.SeccionRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(repo repository.SeccionRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// CrearSeccion crea una sección. Nombre es único.
func (uc *CatalogoUseCase) CrearSeccion(in dto.CrearSeccionRequest) (*dto.SeccionResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Seccion{Nombre: in.Nombre}
	if err := uc.repo.CreateSeccion(s); err != nil {
		return nil, err
	}
	return &dto.SeccionResponse{ID: s.ID, Nombre: s.Nombre}, nil
}

// ListSecciones lista todas las secciones.
func (uc *CatalogoUseCase) ListSecciones() ([]dto.SeccionResponse, error) {
	secciones, err := uc.repo.ListSecciones()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeccionResponse, 0, len(secciones))
	for _, s := range secciones {
		out = append(out, dto.SeccionResponse{ID: s.ID, Nombre: s.Nombre})
	}
	return out, nil
}

// EliminarSeccion borra una sección.
func (uc *CatalogoUseCase) EliminarSeccion(id int64) error {
	return uc.repo.DeleteSeccion(id)
}

// CrearSubseccion crea una subsección dentro de una sección.
func (uc *CatalogoUseCase) CrearSubseccion(seccionID int64, in dto.CrearSubseccionRequest) (*dto.SubseccionResponse, error) {
	if in.Nombre == "" || seccionID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Subseccion{SeccionID: seccionID, Nombre: in.Nombre}
	if err := uc.repo.CreateSubseccion(s); err != nil {
		return nil, err
	}
	return &dto.SubseccionResponse{ID: s.ID, SeccionID: s.SeccionID, Nombre: s.Nombre}, nil
}

// ListSubsecciones lista las subsecciones de una sección.
func (uc *CatalogoUseCase) ListSubsecciones(seccionID int64) ([]dto.SubseccionResponse, error) {
	subsecciones, err := uc.repo.ListSubsecciones(seccionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubseccionResponse, 0, len(subsecciones))
	for _, s := range subsecciones {
		out = append(out, dto.SubseccionResponse{ID: s.ID, SeccionID: s.SeccionID, Nombre: s.Nombre})
	}
	return out, nil
}

// EliminarSubseccion borra una subsección.
func (uc *CatalogoUseCase) EliminarSubseccion(id int64) error {
	return uc.repo.DeleteSubseccion(id)
}
