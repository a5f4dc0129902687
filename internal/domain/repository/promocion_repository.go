package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// PromocionRepository define el puerto de promociones de precio.
type PromocionRepository interface {
	Create(p *entity.Promocion) error
	List() ([]*entity.Promocion, error)
	Delete(id int64) error
	// GetActivaByProducto devuelve la promoción vigente para el producto en la
	// fecha dada, o nil si no hay ninguna.
	GetActivaByProducto(productoID int64, fecha time.Time) (*entity.Promocion, error)
}
