package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para el catálogo de productos. Las
// cantidades se mueven únicamente vía el libro de stock (ledger), salvo la
// cantidad inicial al crear el producto.
type ProductoUseCase struct {
	repo      repository.ProductoRepository
	stockRepo repository.StockVendedorRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, stockRepo repository.StockVendedorRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, stockRepo: stockRepo}
}

// Crear crea un producto nuevo. Nombre es único a nivel global.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.IsNegative() || in.CantidadAlmacen < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		Nombre:          in.Nombre,
		Precio:          in.Precio,
		CantidadAlmacen: in.CantidadAlmacen,
		PrecioCompraUSD: in.PrecioCompraUSD,
		Foto:            in.Foto,
		Destacado:       in.Destacado,
		SeccionID:       in.SeccionID,
		SubseccionID:    in.SubseccionID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID devuelve el producto o nil si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List lista productos con filtros opcionales (búsqueda, sección, destacados).
func (uc *ProductoUseCase) List(filtro repository.FiltroProductos) (*dto.ProductoListResponse, error) {
	productos, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductoListResponse{
		Productos: make([]dto.ProductoResponse, 0, len(productos)),
		Page:      dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}
	for _, p := range productos {
		out.Productos = append(out.Productos, *toProductoResponse(p))
	}
	return out, nil
}

// Actualizar aplica los campos no nil del request. La cantidad en almacén no
// se toca por esta vía.
func (uc *ProductoUseCase) Actualizar(id int64, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		otro, err := uc.repo.GetByNombre(*in.Nombre)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != id {
			return nil, domain.ErrDuplicate
		}
		producto.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.PrecioCompraUSD != nil {
		producto.PrecioCompraUSD = in.PrecioCompraUSD
	}
	if in.Foto != nil {
		producto.Foto = in.Foto
	}
	if in.Destacado != nil {
		producto.Destacado = *in.Destacado
	}
	if in.SeccionID != nil {
		producto.SeccionID = in.SeccionID
	}
	if in.SubseccionID != nil {
		producto.SubseccionID = in.SubseccionID
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Eliminar borra un producto del catálogo. Se rechaza mientras algún vendedor
// conserve stock asignado del producto.
func (uc *ProductoUseCase) Eliminar(id int64) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	asignado, err := uc.stockRepo.SumByProducto(id)
	if err != nil {
		return err
	}
	if asignado > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Precio:          p.Precio,
		CantidadAlmacen: p.CantidadAlmacen,
		PrecioCompraUSD: p.PrecioCompraUSD,
		Foto:            p.Foto,
		Destacado:       p.Destacado,
		SeccionID:       p.SeccionID,
		SubseccionID:    p.SubseccionID,
		CreatedAt:       p.CreatedAt,
	}
}
