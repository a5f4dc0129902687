package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// TransaccionRepository define el puerto del registro de transacciones de stock (append-only).
type TransaccionRepository interface {
	Create(t *entity.Transaccion) error
	ListByProducto(productoID int64, desde, hasta *time.Time, limit, offset int) ([]*entity.Transaccion, error)
}
