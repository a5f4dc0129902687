package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
)

// NotificacionHandler maneja las notificaciones internas (protegido, solo almacén).
type NotificacionHandler struct {
	uc *usecase.NotificacionUseCase
}

// NewNotificacionHandler construye el handler.
func NewNotificacionHandler(uc *usecase.NotificacionUseCase) *NotificacionHandler {
	return &NotificacionHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear notificación
// @Tags         notificaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearNotificacionRequest  true  "Notificación"
// @Success      201   {object}  dto.NotificacionResponse
// @Router       /api/notificaciones [post]
func (h *NotificacionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearNotificacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar notificaciones
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Param        noLeidas  query  bool  false  "Solo no leídas"
// @Param        limit     query  int   false  "Límite"
// @Param        offset    query  int   false  "Offset"
// @Success      200  {array}  dto.NotificacionResponse
// @Router       /api/notificaciones [get]
func (h *NotificacionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("noLeidas") == "true", page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarcarLeida godoc
// @Summary      Marcar notificación como leída
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notificaciones/{id}/leida [put]
func (h *NotificacionHandler) MarcarLeida(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.MarcarLeida(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "notificación leída"})
}

// EliminarLote godoc
// @Summary      Eliminar notificaciones en lote
// @Tags         notificaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EliminarNotificacionesRequest  true  "IDs a eliminar"
// @Success      200   {object}  dto.MensajeResponse
// @Router       /api/notificaciones [delete]
func (h *NotificacionHandler) EliminarLote(c *fiber.Ctx) error {
	var in dto.EliminarNotificacionesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.IDs) == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.uc.EliminarLote(in.IDs); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "notificaciones eliminadas"})
}
