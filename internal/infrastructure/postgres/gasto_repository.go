package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL.
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

// Create persiste un gasto y asigna el ID generado.
func (r *GastoRepo) Create(g *entity.Gasto) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO gastos (vendedor_id, descripcion, monto, fecha) VALUES ($1, $2, $3, $4) RETURNING id`,
		g.VendedorID, g.Descripcion, g.Monto, g.Fecha,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// List lista gastos con filtros opcionales por vendedor y rango de fechas.
func (r *GastoRepo) List(vendedorID *int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Gasto, error) {
	query := `
		SELECT id, vendedor_id, descripcion, monto, fecha
		FROM gastos
		WHERE ($1::bigint IS NULL OR vendedor_id = $1)
		  AND ($2::timestamptz IS NULL OR fecha >= $2)
		  AND ($3::timestamptz IS NULL OR fecha <= $3)
		ORDER BY fecha DESC
		LIMIT $4 OFFSET $5`
	var list []*entity.Gasto
	if err := pgxscan.Select(context.Background(), r.q, &list, query, vendedorID, desde, hasta, limit, offset); err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	return list, nil
}
