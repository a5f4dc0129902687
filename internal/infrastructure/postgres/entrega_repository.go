package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.EntregaRepository = (*EntregaRepo)(nil)

// EntregaRepo implementación del registro de entregas sobre PostgreSQL (usable con pool o tx).
type EntregaRepo struct {
	q Querier
}

// NewEntregaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntregaRepository(q Querier) *EntregaRepo {
	return &EntregaRepo{q: q}
}

// Create persiste una entrega y asigna el ID generado.
func (r *EntregaRepo) Create(e *entity.Entrega) error {
	query := `
		INSERT INTO entregas (producto_id, vendedor_id, cantidad, fecha)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.ProductoID, e.VendedorID, e.Cantidad, e.Fecha,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert entrega: %w", err)
	}
	return nil
}

// ListByVendedor lista entregas de un vendedor en un rango de fechas.
func (r *EntregaRepo) ListByVendedor(vendedorID int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Entrega, error) {
	query := `
		SELECT id, producto_id, vendedor_id, cantidad, fecha
		FROM entregas
		WHERE vendedor_id = $1
		  AND ($2::timestamptz IS NULL OR fecha >= $2)
		  AND ($3::timestamptz IS NULL OR fecha <= $3)
		ORDER BY fecha DESC
		LIMIT $4 OFFSET $5`
	var list []*entity.Entrega
	if err := pgxscan.Select(context.Background(), r.q, &list, query, vendedorID, desde, hasta, limit, offset); err != nil {
		return nil, fmt.Errorf("list entregas: %w", err)
	}
	return list, nil
}
