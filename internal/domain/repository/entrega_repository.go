package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// EntregaRepository define el puerto del registro de entregas (append-only).
type EntregaRepository interface {
	Create(e *entity.Entrega) error
	ListByVendedor(vendedorID int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Entrega, error)
}
