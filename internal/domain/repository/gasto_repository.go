package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// GastoRepository define el puerto de persistencia de gastos.
type GastoRepository interface {
	Create(g *entity.Gasto) error
	List(vendedorID *int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Gasto, error)
}
