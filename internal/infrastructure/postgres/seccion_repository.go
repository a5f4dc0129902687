package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.SeccionRepository = (*SeccionRepo)(nil)

// SeccionRepo implementación de secciones y subsecciones sobre PostgreSQL.
type SeccionRepo struct {
	q Querier
}

// NewSeccionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeccionRepository(q Querier) *SeccionRepo {
	return &SeccionRepo{q: q}
}

// CreateSeccion persiste una sección. Nombre es único.
func (r *SeccionRepo) CreateSeccion(s *entity.Seccion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO secciones (nombre) VALUES ($1) RETURNING id`, s.Nombre,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert seccion: %w", err)
	}
	return nil
}

// ListSecciones lista todas las secciones.
func (r *SeccionRepo) ListSecciones() ([]*entity.Seccion, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM secciones ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list secciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seccion
	for rows.Next() {
		var s entity.Seccion
		if err := rows.Scan(&s.ID, &s.Nombre); err != nil {
			return nil, fmt.Errorf("scan seccion: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteSeccion borra una sección.
func (r *SeccionRepo) DeleteSeccion(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM secciones WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete seccion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateSubseccion persiste una subsección.
func (r *SeccionRepo) CreateSubseccion(s *entity.Subseccion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO subsecciones (seccion_id, nombre) VALUES ($1, $2) RETURNING id`,
		s.SeccionID, s.Nombre,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert subseccion: %w", err)
	}
	return nil
}

// ListSubsecciones lista las subsecciones de una sección.
func (r *SeccionRepo) ListSubsecciones(seccionID int64) ([]*entity.Subseccion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, seccion_id, nombre FROM subsecciones WHERE seccion_id = $1 ORDER BY nombre`, seccionID)
	if err != nil {
		return nil, fmt.Errorf("list subsecciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subseccion
	for rows.Next() {
		var s entity.Subseccion
		if err := rows.Scan(&s.ID, &s.SeccionID, &s.Nombre); err != nil {
			return nil, fmt.Errorf("scan subseccion: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteSubseccion borra una subsección.
func (r *SeccionRepo) DeleteSubseccion(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM subsecciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subseccion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
