package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/application/ledger"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// LedgerHandler maneja entregas, bajas y consultas de stock (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Entregar godoc
// @Summary      Entregar stock del almacén a un vendedor
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntregaRequest  true  "Entrega"
// @Success      201   {object}  dto.EntregaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/entregas [post]
func (h *LedgerHandler) Entregar(c *fiber.Ctx) error {
	var in dto.EntregaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productoID, err := parseID(in.ProductoID)
	if err != nil {
		return respondError(c, err)
	}
	vendedorID, err := parseID(in.VendedorID)
	if err != nil {
		return respondError(c, err)
	}
	cantidad, err := parseCantidad(in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	entrega, err := h.uc.EntregarStock(c.UserContext(), ledger.EntregaInput{
		ProductoID: productoID,
		VendedorID: vendedorID,
		Cantidad:   cantidad,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EntregaResponse{
		ID:         entrega.ID,
		ProductoID: entrega.ProductoID,
		VendedorID: entrega.VendedorID,
		Cantidad:   entrega.Cantidad,
		Fecha:      entrega.Fecha,
	})
}

// Reducir godoc
// @Summary      Devolver stock de un vendedor al almacén
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReducirRequest  true  "Baja de stock"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/reducir [put]
func (h *LedgerHandler) Reducir(c *fiber.Ctx) error {
	var in dto.ReducirRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productoID, err := parseID(in.ProductoID)
	if err != nil {
		return respondError(c, err)
	}
	vendedorID, err := parseID(in.VendedorID)
	if err != nil {
		return respondError(c, err)
	}
	cantidad, err := parseCantidad(in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.ReducirStock(c.UserContext(), ledger.ReducirInput{
		ProductoID: productoID,
		VendedorID: vendedorID,
		Cantidad:   cantidad,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "stock devuelto al almacén"})
}

// ActualizarCantidades godoc
// @Summary      Fijar cantidades de una asignación (estado completo, no delta)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarCantidadesRequest  true  "Estado nuevo"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/parametros [put]
func (h *LedgerHandler) ActualizarCantidades(c *fiber.Ctx) error {
	var in dto.ActualizarCantidadesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	vendedorID, err := parseID(in.VendedorID)
	if err != nil {
		return respondError(c, err)
	}
	productoID, err := parseID(in.ProductoID)
	if err != nil {
		return respondError(c, err)
	}
	params := make([]ledger.ParametroCantidad, 0, len(in.Parametros))
	for _, p := range in.Parametros {
		params = append(params, ledger.ParametroCantidad{Nombre: p.Nombre, Cantidad: p.Cantidad})
	}
	if err := h.uc.ActualizarCantidades(c.UserContext(), ledger.CantidadesInput{
		VendedorID:    vendedorID,
		ProductoID:    productoID,
		NuevaCantidad: in.NuevaCantidad,
		Parametros:    params,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "cantidades actualizadas"})
}

// StockVendedor godoc
// @Summary      Stock asignado a un vendedor
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        vendedorId   path   string  true   "ID del vendedor"
// @Param        productoIds  query  string  false  "IDs de producto separados por coma"
// @Success      200  {array}   dto.StockVendedorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/{vendedorId} [get]
func (h *LedgerHandler) StockVendedor(c *fiber.Ctx) error {
	vendedorID, err := parseID(c.Params("vendedorId"))
	if err != nil {
		return respondError(c, err)
	}
	// Un vendedor solo puede consultar su propio stock.
	if GetRol(c) == entity.RolVendedor && GetUserID(c) != vendedorID {
		return respondError(c, domain.ErrForbidden)
	}
	var stocks []*entity.StockVendedor
	if raw := c.Query("productoIds"); raw != "" {
		ids := make([]int64, 0)
		for _, s := range strings.Split(raw, ",") {
			id, err := parseID(strings.TrimSpace(s))
			if err != nil {
				return respondError(c, err)
			}
			ids = append(ids, id)
		}
		stocks, err = h.uc.StockPorProductos(vendedorID, ids)
	} else {
		stocks, err = h.uc.ListStockDeVendedor(vendedorID)
	}
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockVendedorResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockVendedorResponse{
			VendedorID: s.VendedorID,
			ProductoID: s.ProductoID,
			Cantidad:   s.Cantidad,
		})
	}
	return c.JSON(out)
}

// StockDetalle godoc
// @Summary      Asignación de un producto a un vendedor, con parámetros
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        vendedorId  path  string  true  "ID del vendedor"
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockVendedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{vendedorId}/{productoId} [get]
func (h *LedgerHandler) StockDetalle(c *fiber.Ctx) error {
	vendedorID, err := parseID(c.Params("vendedorId"))
	if err != nil {
		return respondError(c, err)
	}
	productoID, err := parseID(c.Params("productoId"))
	if err != nil {
		return respondError(c, err)
	}
	if GetRol(c) == entity.RolVendedor && GetUserID(c) != vendedorID {
		return respondError(c, domain.ErrForbidden)
	}
	stock, params, err := h.uc.StockDeVendedor(vendedorID, productoID)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.StockVendedorResponse{
		VendedorID: stock.VendedorID,
		ProductoID: stock.ProductoID,
		Cantidad:   stock.Cantidad,
	}
	for _, p := range params {
		out.Parametros = append(out.Parametros, dto.ParametroCantidad{Nombre: p.Nombre, Cantidad: p.Cantidad})
	}
	return c.JSON(out)
}

// ResumenProducto godoc
// @Summary      Resumen de cantidades de un producto (almacén + asignado)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ResumenProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/resumen [get]
func (h *LedgerHandler) ResumenProducto(c *fiber.Ctx) error {
	productoID, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	resumen, err := h.uc.ResumenDeProducto(productoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ResumenProductoResponse{
		ProductoID:       productoID,
		CantidadAlmacen:  resumen.CantidadAlmacen,
		CantidadAsignada: resumen.CantidadAsignada,
		Total:            resumen.Total(),
	})
}

// Entregas godoc
// @Summary      Historial de entregas de un vendedor
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        vendedorId  query  string  true   "ID del vendedor"
// @Param        desde       query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta       query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.EntregaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/entregas [get]
func (h *LedgerHandler) Entregas(c *fiber.Ctx) error {
	vendedorID, err := parseID(c.Query("vendedorId"))
	if err != nil {
		return respondError(c, err)
	}
	// Un vendedor solo puede consultar sus propias entregas.
	if GetRol(c) == entity.RolVendedor && GetUserID(c) != vendedorID {
		return respondError(c, domain.ErrForbidden)
	}
	desde, err := parseFechaQuery(c.Query("desde"))
	if err != nil {
		return respondError(c, err)
	}
	hasta, err := parseFechaQuery(c.Query("hasta"))
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	entregas, err := h.uc.HistorialEntregas(vendedorID, desde, hasta, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.EntregaResponse, 0, len(entregas))
	for _, e := range entregas {
		out = append(out, dto.EntregaResponse{
			ID:         e.ID,
			ProductoID: e.ProductoID,
			VendedorID: e.VendedorID,
			Cantidad:   e.Cantidad,
			Fecha:      e.Fecha,
		})
	}
	return c.JSON(out)
}

// Transacciones godoc
// @Summary      Historial de movimientos de stock de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productoId  query  string  true   "ID del producto"
// @Param        desde       query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta       query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.TransaccionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transacciones [get]
func (h *LedgerHandler) Transacciones(c *fiber.Ctx) error {
	productoID, err := parseID(c.Query("productoId"))
	if err != nil {
		return respondError(c, err)
	}
	desde, err := parseFechaQuery(c.Query("desde"))
	if err != nil {
		return respondError(c, err)
	}
	hasta, err := parseFechaQuery(c.Query("hasta"))
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	movimientos, err := h.uc.HistorialTransacciones(productoID, desde, hasta, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransaccionResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, dto.TransaccionResponse{
			ID:         m.ID,
			ProductoID: m.ProductoID,
			VendedorID: m.VendedorID,
			Cantidad:   m.Cantidad,
			Tipo:       m.Tipo,
			Origen:     m.Origen,
			Destino:    m.Destino,
			Fecha:      m.Fecha,
		})
	}
	return c.JSON(out)
}
