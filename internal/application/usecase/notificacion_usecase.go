package usecase

import (
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// NotificacionUseCase persistencia de notificaciones internas. El envío a los
// usuarios queda fuera del alcance del backend.
type NotificacionUseCase struct {
	repo repository.NotificacionRepository
}

// NewNotificacionUseCase construye el caso de uso.
func NewNotificacionUseCase(repo repository.NotificacionRepository) *NotificacionUseCase {
	return &NotificacionUseCase{repo: repo}
}

// Crear persiste una notificación.
func (uc *NotificacionUseCase) Crear(in dto.CrearNotificacionRequest) (*dto.NotificacionResponse, error) {
	if in.Mensaje == "" {
		return nil, domain.ErrInvalidInput
	}
	n := &entity.Notificacion{Mensaje: in.Mensaje}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	return toNotificacionResponse(n), nil
}

// List lista notificaciones, opcionalmente solo las no leídas.
func (uc *NotificacionUseCase) List(soloNoLeidas bool, limit, offset int) ([]dto.NotificacionResponse, error) {
	notifs, err := uc.repo.List(soloNoLeidas, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificacionResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, *toNotificacionResponse(n))
	}
	return out, nil
}

// MarcarLeida marca una notificación como leída.
func (uc *NotificacionUseCase) MarcarLeida(id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.MarcarLeida(id)
}

// EliminarLote borra un conjunto de notificaciones en una sola sentencia.
func (uc *NotificacionUseCase) EliminarLote(ids []int64) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.DeleteByIDs(ids)
}

func toNotificacionResponse(n *entity.Notificacion) *dto.NotificacionResponse {
	return &dto.NotificacionResponse{
		ID:        n.ID,
		Mensaje:   n.Mensaje,
		Leida:     n.Leida,
		CreatedAt: n.CreatedAt,
	}
}
