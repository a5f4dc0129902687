package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la venta y su desglose por parámetro, y asigna el ID generado.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (producto_id, vendedor_id, cantidad, precio_unitario, total, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.ProductoID, v.VendedorID, v.Cantidad, v.PrecioUnitario, v.Total, v.Fecha,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	for i := range v.Parametros {
		v.Parametros[i].VentaID = v.ID
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO venta_parametros (venta_id, nombre, cantidad) VALUES ($1, $2, $3)`,
			v.ID, v.Parametros[i].Nombre, v.Parametros[i].Cantidad,
		)
		if err != nil {
			return fmt.Errorf("insert venta parametro: %w", err)
		}
	}
	return nil
}

// GetByIDAndVendedor devuelve la venta con su desglose, o nil si no existe o
// no pertenece al vendedor.
func (r *VentaRepo) GetByIDAndVendedor(id, vendedorID int64) (*entity.Venta, error) {
	query := `
		SELECT id, producto_id, vendedor_id, cantidad, precio_unitario, total, fecha
		FROM ventas WHERE id = $1 AND vendedor_id = $2`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id, vendedorID).Scan(
		&v.ID, &v.ProductoID, &v.VendedorID, &v.Cantidad, &v.PrecioUnitario, &v.Total, &v.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	if err := r.cargarParametros(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete borra la venta; el desglose cae por ON DELETE CASCADE.
func (r *VentaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// List lista ventas según el filtro (condiciones armadas con squirrel).
func (r *VentaRepo) List(filtro repository.FiltroVentas) ([]*entity.Venta, error) {
	b := sq.Select("id", "producto_id", "vendedor_id", "cantidad", "precio_unitario", "total", "fecha").
		From("ventas").
		OrderBy("fecha DESC", "id DESC").
		Limit(uint64(filtro.Limit)).
		Offset(uint64(filtro.Offset)).
		PlaceholderFormat(sq.Dollar)
	if filtro.VendedorID != nil {
		b = b.Where(sq.Eq{"vendedor_id": *filtro.VendedorID})
	}
	if filtro.ProductoID != nil {
		b = b.Where(sq.Eq{"producto_id": *filtro.ProductoID})
	}
	if filtro.Desde != nil {
		b = b.Where(sq.GtOrEq{"fecha": *filtro.Desde})
	}
	if filtro.Hasta != nil {
		b = b.Where(sq.LtOrEq{"fecha": *filtro.Hasta})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ventas: %w", err)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ProductoID, &v.VendedorID, &v.Cantidad, &v.PrecioUnitario, &v.Total, &v.Fecha); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		if err := r.cargarParametros(v); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *VentaRepo) cargarParametros(v *entity.Venta) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT venta_id, nombre, cantidad FROM venta_parametros WHERE venta_id = $1 ORDER BY nombre`, v.ID)
	if err != nil {
		return fmt.Errorf("list venta parametros: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.VentaParametro
		if err := rows.Scan(&p.VentaID, &p.Nombre, &p.Cantidad); err != nil {
			return fmt.Errorf("scan venta parametro: %w", err)
		}
		v.Parametros = append(v.Parametros, p)
	}
	return rows.Err()
}
