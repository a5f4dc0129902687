package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// GastoHandler maneja gastos operativos (protegido).
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar un gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearGastoRequest  true  "Gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var vendedorID *int64
	if GetRol(c) == entity.RolVendedor {
		// Un vendedor solo registra gastos propios.
		id := GetUserID(c)
		vendedorID = &id
	} else if in.VendedorID != nil {
		id, err := parseID(*in.VendedorID)
		if err != nil {
			return respondError(c, err)
		}
		vendedorID = &id
	}
	out, err := h.uc.Crear(vendedorID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        vendedorId  query  string  false  "Filtrar por vendedor (solo almacén)"
// @Param        desde       query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta       query  string  false  "Fecha final YYYY-MM-DD"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {array}  dto.GastoResponse
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	var vendedorID *int64
	if GetRol(c) == entity.RolVendedor {
		id := GetUserID(c)
		vendedorID = &id
	} else if raw := c.Query("vendedorId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return respondError(c, err)
		}
		vendedorID = &id
	}
	desde, err := parseFechaQuery(c.Query("desde"))
	if err != nil {
		return respondError(c, err)
	}
	hasta, err := parseFechaQuery(c.Query("hasta"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(vendedorID, desde, hasta, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
