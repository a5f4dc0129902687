package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.StockVendedorRepository = (*StockVendedorRepo)(nil)

// StockVendedorRepo implementación de StockVendedorRepository sobre PostgreSQL (usable con pool o tx).
type StockVendedorRepo struct {
	q Querier
}

// NewStockVendedorRepository construye el adaptador de asignaciones. Pasar pool o tx (Querier).
func NewStockVendedorRepository(q Querier) *StockVendedorRepo {
	return &StockVendedorRepo{q: q}
}

// Get obtiene la asignación de un vendedor para un producto, o nil si no existe.
func (r *StockVendedorRepo) Get(vendedorID, productoID int64) (*entity.StockVendedor, error) {
	query := `
		SELECT vendedor_id, producto_id, cantidad, updated_at
		FROM stock_vendedor WHERE vendedor_id = $1 AND producto_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, vendedorID, productoID))
}

// GetForUpdate obtiene la asignación y bloquea la fila (SELECT FOR UPDATE), o nil si no existe.
func (r *StockVendedorRepo) GetForUpdate(vendedorID, productoID int64) (*entity.StockVendedor, error) {
	query := `
		SELECT vendedor_id, producto_id, cantidad, updated_at
		FROM stock_vendedor WHERE vendedor_id = $1 AND producto_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, vendedorID, productoID))
}

// Upsert inserta o actualiza la cantidad asignada (por vendedor y producto).
func (r *StockVendedorRepo) Upsert(stock *entity.StockVendedor) error {
	query := `
		INSERT INTO stock_vendedor (vendedor_id, producto_id, cantidad, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (vendedor_id, producto_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.VendedorID, stock.ProductoID, stock.Cantidad)
	if err != nil {
		return fmt.Errorf("upsert stock vendedor: %w", err)
	}
	return nil
}

// ListByVendedor lista todas las asignaciones de un vendedor.
func (r *StockVendedorRepo) ListByVendedor(vendedorID int64) ([]*entity.StockVendedor, error) {
	query := `
		SELECT vendedor_id, producto_id, cantidad, updated_at
		FROM stock_vendedor WHERE vendedor_id = $1
		ORDER BY producto_id`
	var list []*entity.StockVendedor
	if err := pgxscan.Select(context.Background(), r.q, &list, query, vendedorID); err != nil {
		return nil, fmt.Errorf("list stock por vendedor: %w", err)
	}
	return list, nil
}

// ListByProductoIDs devuelve las asignaciones del vendedor para un conjunto de
// productos, con el slice de IDs atado a un único parámetro array.
func (r *StockVendedorRepo) ListByProductoIDs(vendedorID int64, productoIDs []int64) ([]*entity.StockVendedor, error) {
	query := `
		SELECT vendedor_id, producto_id, cantidad, updated_at
		FROM stock_vendedor WHERE vendedor_id = $1 AND producto_id = ANY($2)
		ORDER BY producto_id`
	var list []*entity.StockVendedor
	if err := pgxscan.Select(context.Background(), r.q, &list, query, vendedorID, productoIDs); err != nil {
		return nil, fmt.Errorf("list stock por productos: %w", err)
	}
	return list, nil
}

// SumByProducto suma el stock asignado a todos los vendedores para un producto.
func (r *StockVendedorRepo) SumByProducto(productoID int64) (int, error) {
	query := `SELECT COALESCE(SUM(cantidad), 0) FROM stock_vendedor WHERE producto_id = $1`
	var total int
	if err := r.q.QueryRow(context.Background(), query, productoID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock por producto: %w", err)
	}
	return total, nil
}

// ListParametros lista los parámetros de una asignación.
func (r *StockVendedorRepo) ListParametros(vendedorID, productoID int64) ([]*entity.ParametroStock, error) {
	return r.listParametros(vendedorID, productoID, false)
}

// ListParametrosForUpdate lista los parámetros bloqueando sus filas (SELECT FOR UPDATE).
func (r *StockVendedorRepo) ListParametrosForUpdate(vendedorID, productoID int64) ([]*entity.ParametroStock, error) {
	return r.listParametros(vendedorID, productoID, true)
}

func (r *StockVendedorRepo) listParametros(vendedorID, productoID int64, forUpdate bool) ([]*entity.ParametroStock, error) {
	query := `
		SELECT id, vendedor_id, producto_id, nombre, cantidad
		FROM stock_parametros WHERE vendedor_id = $1 AND producto_id = $2
		ORDER BY nombre`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var list []*entity.ParametroStock
	if err := pgxscan.Select(context.Background(), r.q, &list, query, vendedorID, productoID); err != nil {
		return nil, fmt.Errorf("list parametros: %w", err)
	}
	return list, nil
}

// UpsertParametro inserta o fija la cantidad de un parámetro (por vendedor, producto y nombre).
func (r *StockVendedorRepo) UpsertParametro(p *entity.ParametroStock) error {
	query := `
		INSERT INTO stock_parametros (vendedor_id, producto_id, nombre, cantidad)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vendedor_id, producto_id, nombre)
		DO UPDATE SET cantidad = EXCLUDED.cantidad`
	_, err := r.q.Exec(context.Background(), query, p.VendedorID, p.ProductoID, p.Nombre, p.Cantidad)
	if err != nil {
		return fmt.Errorf("upsert parametro: %w", err)
	}
	return nil
}

func (r *StockVendedorRepo) DeleteParametros(vendedorID, productoID int64) error {
	query := `DELETE FROM stock_parametros WHERE vendedor_id = $1 AND producto_id = $2`
	_, err := r.q.Exec(context.Background(), query, vendedorID, productoID)
	if err != nil {
		return fmt.Errorf("delete parametros: %w", err)
	}
	return nil
}

func (r *StockVendedorRepo) scanOne(row pgx.Row) (*entity.StockVendedor, error) {
	var s entity.StockVendedor
	err := row.Scan(&s.VendedorID, &s.ProductoID, &s.Cantidad, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock vendedor: %w", err)
	}
	return &s, nil
}
