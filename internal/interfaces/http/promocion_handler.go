package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
)

// PromocionHandler maneja promociones de precio (protegido, solo almacén).
type PromocionHandler struct {
	uc *usecase.PromocionUseCase
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *usecase.PromocionUseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear promoción para un producto
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPromocionRequest  true  "Promoción"
// @Success      201   {object}  dto.PromocionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/promociones [post]
func (h *PromocionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productoID, err := parseID(in.ProductoID)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Crear(productoID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar promociones
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PromocionResponse
// @Router       /api/promociones [get]
func (h *PromocionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar promoción
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/promociones/{id} [delete]
func (h *PromocionHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "promoción eliminada"})
}
