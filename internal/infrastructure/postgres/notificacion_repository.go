package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.NotificacionRepository = (*NotificacionRepo)(nil)

// NotificacionRepo implementación del puerto NotificacionRepository sobre PostgreSQL.
type NotificacionRepo struct {
	q Querier
}

// NewNotificacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificacionRepository(q Querier) *NotificacionRepo {
	return &NotificacionRepo{q: q}
}

// Create persiste una notificación y asigna ID y created_at generados.
func (r *NotificacionRepo) Create(n *entity.Notificacion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO notificaciones (mensaje) VALUES ($1) RETURNING id, leida, created_at`,
		n.Mensaje,
	).Scan(&n.ID, &n.Leida, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notificacion: %w", err)
	}
	return nil
}

// List lista notificaciones, opcionalmente solo las no leídas.
func (r *NotificacionRepo) List(soloNoLeidas bool, limit, offset int) ([]*entity.Notificacion, error) {
	query := `
		SELECT id, mensaje, leida, created_at
		FROM notificaciones
		WHERE ($1::boolean = false OR leida = false)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	var list []*entity.Notificacion
	if err := pgxscan.Select(context.Background(), r.q, &list, query, soloNoLeidas, limit, offset); err != nil {
		return nil, fmt.Errorf("list notificaciones: %w", err)
	}
	return list, nil
}

// MarcarLeida marca una notificación como leída.
func (r *NotificacionRepo) MarcarLeida(id int64) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE notificaciones SET leida = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marcar leida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDs borra un conjunto de notificaciones con el slice atado a un
// único parámetro array, en lugar de concatenar placeholders.
func (r *NotificacionRepo) DeleteByIDs(ids []int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notificaciones WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete notificaciones: %w", err)
	}
	return nil
}
