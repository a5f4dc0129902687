package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
)

// CatalogoHandler maneja secciones y subsecciones (protegido).
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// CrearSeccion godoc
// @Summary      Crear sección
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearSeccionRequest  true  "Sección"
// @Success      201   {object}  dto.SeccionResponse
// @Router       /api/secciones [post]
func (h *CatalogoHandler) CrearSeccion(c *fiber.Ctx) error {
	var in dto.CrearSeccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearSeccion(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSecciones godoc
// @Summary      Listar secciones
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SeccionResponse
// @Router       /api/secciones [get]
func (h *CatalogoHandler) ListSecciones(c *fiber.Ctx) error {
	out, err := h.uc.ListSecciones()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EliminarSeccion godoc
// @Summary      Eliminar sección
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sección"
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/secciones/{id} [delete]
func (h *CatalogoHandler) EliminarSeccion(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.EliminarSeccion(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "sección eliminada"})
}

// CrearSubseccion godoc
// @Summary      Crear subsección
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sección"
// @Param        body  body  dto.CrearSubseccionRequest  true  "Subsección"
// @Success      201   {object}  dto.SubseccionResponse
// @Router       /api/secciones/{id}/subsecciones [post]
func (h *CatalogoHandler) CrearSubseccion(c *fiber.Ctx) error {
	seccionID, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CrearSubseccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearSubseccion(seccionID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSubsecciones godoc
// @Summary      Listar subsecciones de una sección
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sección"
// @Success      200  {array}  dto.SubseccionResponse
// @Router       /api/secciones/{id}/subsecciones [get]
func (h *CatalogoHandler) ListSubsecciones(c *fiber.Ctx) error {
	seccionID, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListSubsecciones(seccionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EliminarSubseccion godoc
// @Summary      Eliminar subsección
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la subsección"
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/subsecciones/{id} [delete]
func (h *CatalogoHandler) EliminarSubseccion(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.EliminarSubseccion(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "subsección eliminada"})
}
