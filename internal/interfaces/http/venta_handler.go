package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/application/ledger"
	"github.com/tu-usuario/almacen-ventas/internal/application/reportes"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// VentaHandler maneja registro, anulación y consulta de ventas (protegido).
type VentaHandler struct {
	ledgerUC *ledger.UseCase
	ventaUC  *usecase.VentaUseCase
	pdfUC    *reportes.PDFUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(ledgerUC *ledger.UseCase, ventaUC *usecase.VentaUseCase, pdfUC *reportes.PDFUseCase) *VentaHandler {
	return &VentaHandler{ledgerUC: ledgerUC, ventaUC: ventaUC, pdfUC: pdfUC}
}

// Crear godoc
// @Summary      Registrar una venta (descuenta stock del vendedor)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaRequest  true  "Venta"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Crear(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productoID, err := parseID(in.ProductoID)
	if err != nil {
		return respondError(c, err)
	}
	cantidad, err := parseCantidad(in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	fecha := time.Now()
	if in.Fecha != "" {
		fecha, err = time.Parse(formatoFecha, in.Fecha)
		if err != nil {
			return respondError(c, domain.ErrInvalidInput)
		}
	}
	params := make([]ledger.ParametroCantidad, 0, len(in.Parametros))
	for _, p := range in.Parametros {
		params = append(params, ledger.ParametroCantidad{Nombre: p.Nombre, Cantidad: p.Cantidad})
	}
	venta, err := h.ledgerUC.RegistrarVenta(c.UserContext(), ledger.VentaInput{
		ProductoID: productoID,
		VendedorID: GetUserID(c),
		Cantidad:   cantidad,
		Fecha:      fecha,
		Parametros: params,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToVentaResponse(venta))
}

// Anular godoc
// @Summary      Anular una venta (restaura el stock del vendedor)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID de la venta"
// @Param        vendedorId  query  string  false  "Vendedor dueño (solo almacén)"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Anular(c *fiber.Ctx) error {
	ventaID, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	vendedorID := GetUserID(c)
	if GetRol(c) == entity.RolAlmacen {
		// El almacén debe indicar a qué vendedor pertenece la venta.
		vendedorID, err = parseID(c.Query("vendedorId"))
		if err != nil {
			return respondError(c, err)
		}
	} else if raw := c.Query("vendedorId"); raw != "" {
		// Un vendedor solo puede anular sus propias ventas.
		otro, err := parseID(raw)
		if err != nil {
			return respondError(c, err)
		}
		if otro != vendedorID {
			return respondError(c, domain.ErrForbidden)
		}
	}
	if err := h.ledgerUC.AnularVenta(c.UserContext(), ventaID, vendedorID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "venta anulada"})
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        vendedorId  query  string  false  "Filtrar por vendedor (solo almacén)"
// @Param        productoId  query  string  false  "Filtrar por producto"
// @Param        desde       query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta       query  string  false  "Fecha final YYYY-MM-DD"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	filtro := repository.FiltroVentas{Limit: page.Limit, Offset: page.Offset}
	if GetRol(c) == entity.RolVendedor {
		// Un vendedor solo ve sus propias ventas.
		id := GetUserID(c)
		filtro.VendedorID = &id
	} else if raw := c.Query("vendedorId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return respondError(c, err)
		}
		filtro.VendedorID = &id
	}
	if raw := c.Query("productoId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return respondError(c, err)
		}
		filtro.ProductoID = &id
	}
	var err error
	if filtro.Desde, err = parseFechaQuery(c.Query("desde")); err != nil {
		return respondError(c, err)
	}
	if filtro.Hasta, err = parseFechaQuery(c.Query("hasta")); err != nil {
		return respondError(c, err)
	}
	out, err := h.ventaUC.List(filtro)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reporte godoc
// @Summary      Reporte de ventas en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        vendedorId  query  string  false  "Filtrar por vendedor"
// @Param        desde       query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        hasta       query  string  true   "Fecha final YYYY-MM-DD"
// @Success      200  {file}    byte
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/reporte [get]
func (h *VentaHandler) Reporte(c *fiber.Ctx) error {
	desde, err := time.Parse(formatoFecha, c.Query("desde"))
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	hasta, err := time.Parse(formatoFecha, c.Query("hasta"))
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	var vendedorID *int64
	if raw := c.Query("vendedorId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return respondError(c, err)
		}
		vendedorID = &id
	}
	pdf, err := h.pdfUC.GenerarReporte(c.UserContext(), vendedorID, desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(pdf)
}

func parseFechaQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(formatoFecha, raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
