package repository

import "github.com/tu-usuario/almacen-ventas/internal/domain/entity"

// NotificacionRepository define el puerto de persistencia de notificaciones.
type NotificacionRepository interface {
	Create(n *entity.Notificacion) error
	List(soloNoLeidas bool, limit, offset int) ([]*entity.Notificacion, error)
	MarcarLeida(id int64) error
	// DeleteByIDs borra un conjunto de notificaciones (id = ANY($1)).
	DeleteByIDs(ids []int64) error
}
