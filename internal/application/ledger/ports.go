package ledger

import (
	"context"

	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de stock:
// Commit si fn retorna nil, Rollback en cualquier otro camino de salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		stockRepo repository.StockVendedorRepository,
		entregaRepo repository.EntregaRepository,
		transaccionRepo repository.TransaccionRepository,
		ventaRepo repository.VentaRepository,
	) error) error
}
