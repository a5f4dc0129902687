package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, precio, cantidad_almacen, precio_compra_usd, foto, destacado, seccion_id, subseccion_id, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, nombre_normalizado, precio, cantidad_almacen, precio_compra_usd, foto, destacado, seccion_id, subseccion_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, normalizar(p.Nombre), p.Precio, p.CantidadAlmacen, p.PrecioCompraUSD,
		p.Foto, p.Destacado, p.SeccionID, p.SubseccionID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNombre obtiene un producto por su nombre exacto, o nil si no existe.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE nombre = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombre))
}

// GetForUpdate obtiene el producto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *ProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista productos con filtros opcionales. La búsqueda es insensible a
// acentos (columna nombre_normalizado).
func (r *ProductoRepo) List(filtro repository.FiltroProductos) ([]*entity.Producto, error) {
	b := sq.Select(productoColumns).
		From("productos").
		OrderBy("nombre ASC").
		Limit(uint64(filtro.Limit)).
		Offset(uint64(filtro.Offset)).
		PlaceholderFormat(sq.Dollar)
	if filtro.Busqueda != "" {
		b = b.Where(sq.Like{"nombre_normalizado": "%" + normalizar(filtro.Busqueda) + "%"})
	}
	if filtro.SeccionID != nil {
		b = b.Where(sq.Eq{"seccion_id": *filtro.SeccionID})
	}
	if filtro.Destacado != nil {
		b = b.Where(sq.Eq{"destacado": *filtro.Destacado})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list productos: %w", err)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos del producto (sin tocar cantidad_almacen).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, nombre_normalizado = $3, precio = $4, precio_compra_usd = $5,
		    foto = $6, destacado = $7, seccion_id = $8, subseccion_id = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, normalizar(p.Nombre), p.Precio, p.PrecioCompraUSD,
		p.Foto, p.Destacado, p.SeccionID, p.SubseccionID, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCantidadAlmacen fija la cantidad en almacén (valor absoluto). El check
// de no-negatividad de la tabla respalda al caso de uso.
func (r *ProductoRepo) UpdateCantidadAlmacen(id int64, cantidad int) error {
	query := `UPDATE productos SET cantidad_almacen = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, cantidad)
	if err != nil {
		return fmt.Errorf("update cantidad almacen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra un producto.
func (r *ProductoRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Precio, &p.CantidadAlmacen, &p.PrecioCompraUSD,
		&p.Foto, &p.Destacado, &p.SeccionID, &p.SubseccionID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}
