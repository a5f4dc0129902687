package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.TransaccionRepository = (*TransaccionRepo)(nil)

// TransaccionRepo implementación del historial de transacciones sobre PostgreSQL (usable con pool o tx).
type TransaccionRepo struct {
	q Querier
}

// NewTransaccionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransaccionRepository(q Querier) *TransaccionRepo {
	return &TransaccionRepo{q: q}
}

// Create persiste una transacción de stock y asigna el ID generado.
func (r *TransaccionRepo) Create(t *entity.Transaccion) error {
	query := `
		INSERT INTO transacciones (producto_id, vendedor_id, cantidad, tipo, origen, destino, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.ProductoID, t.VendedorID, t.Cantidad, t.Tipo, t.Origen, t.Destino, t.Fecha,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transaccion: %w", err)
	}
	return nil
}

// ListByProducto lista transacciones de un producto en un rango de fechas.
func (r *TransaccionRepo) ListByProducto(productoID int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Transaccion, error) {
	query := `
		SELECT id, producto_id, vendedor_id, cantidad, tipo, origen, destino, fecha
		FROM transacciones
		WHERE producto_id = $1
		  AND ($2::timestamptz IS NULL OR fecha >= $2)
		  AND ($3::timestamptz IS NULL OR fecha <= $3)
		ORDER BY fecha DESC
		LIMIT $4 OFFSET $5`
	var list []*entity.Transaccion
	if err := pgxscan.Select(context.Background(), r.q, &list, query, productoID, desde, hasta, limit, offset); err != nil {
		return nil, fmt.Errorf("list transacciones: %w", err)
	}
	return list, nil
}
