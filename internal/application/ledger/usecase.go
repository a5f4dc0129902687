package ledger

import (
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// UseCase agrupa las operaciones del libro de stock y ventas: entregas de
// almacén a vendedor, bajas de vendedor a almacén, registro y anulación de
// ventas, y sets absolutos de cantidades por parámetro. Cada operación de
// escritura corre dentro de una única transacción (TxRunner); las consultas
// usan los repositorios atados al pool.
type UseCase struct {
	txRunner        TxRunner
	productoRepo    repository.ProductoRepository
	stockRepo       repository.StockVendedorRepository
	promocionRepo   repository.PromocionRepository
	entregaRepo     repository.EntregaRepository
	transaccionRepo repository.TransaccionRepository
}

// NewUseCase construye el caso de uso del libro de stock.
func NewUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	stockRepo repository.StockVendedorRepository,
	promocionRepo repository.PromocionRepository,
	entregaRepo repository.EntregaRepository,
	transaccionRepo repository.TransaccionRepository,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		productoRepo:    productoRepo,
		stockRepo:       stockRepo,
		promocionRepo:   promocionRepo,
		entregaRepo:     entregaRepo,
		transaccionRepo: transaccionRepo,
	}
}

// ParametroCantidad par (nombre, cantidad) usado en desgloses de venta y sets absolutos.
type ParametroCantidad struct {
	Nombre   string
	Cantidad int
}

// validarParametros verifica nombres no vacíos ni repetidos y cantidades dentro
// del rango permitido (mínimo minCantidad).
func validarParametros(params []ParametroCantidad, minCantidad int) bool {
	vistos := make(map[string]struct{}, len(params))
	for _, p := range params {
		if p.Nombre == "" || p.Cantidad < minCantidad {
			return false
		}
		if _, ok := vistos[p.Nombre]; ok {
			return false
		}
		vistos[p.Nombre] = struct{}{}
	}
	return true
}
