package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.PromocionRepository = (*PromocionRepo)(nil)

// PromocionRepo implementación del puerto PromocionRepository sobre PostgreSQL.
type PromocionRepo struct {
	q Querier
}

// NewPromocionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromocionRepository(q Querier) *PromocionRepo {
	return &PromocionRepo{q: q}
}

// Create persiste una promoción y asigna el ID generado.
func (r *PromocionRepo) Create(p *entity.Promocion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO promociones (producto_id, precio_promo, inicio, fin) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.ProductoID, p.PrecioPromo, p.Inicio, p.Fin,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert promocion: %w", err)
	}
	return nil
}

// List lista todas las promociones.
func (r *PromocionRepo) List() ([]*entity.Promocion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, producto_id, precio_promo, inicio, fin FROM promociones ORDER BY inicio DESC`)
	if err != nil {
		return nil, fmt.Errorf("list promociones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promocion
	for rows.Next() {
		var p entity.Promocion
		if err := rows.Scan(&p.ID, &p.ProductoID, &p.PrecioPromo, &p.Inicio, &p.Fin); err != nil {
			return nil, fmt.Errorf("scan promocion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete borra una promoción.
func (r *PromocionRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM promociones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promocion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetActivaByProducto devuelve la promoción vigente para el producto en la
// fecha dada (la más reciente si hay solapes), o nil si no hay ninguna.
func (r *PromocionRepo) GetActivaByProducto(productoID int64, fecha time.Time) (*entity.Promocion, error) {
	query := `
		SELECT id, producto_id, precio_promo, inicio, fin
		FROM promociones
		WHERE producto_id = $1 AND inicio <= $2 AND fin >= $2
		ORDER BY inicio DESC
		LIMIT 1`
	var p entity.Promocion
	err := r.q.QueryRow(context.Background(), query, productoID, fecha).Scan(
		&p.ID, &p.ProductoID, &p.PrecioPromo, &p.Inicio, &p.Fin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promocion activa: %w", err)
	}
	return &p, nil
}
