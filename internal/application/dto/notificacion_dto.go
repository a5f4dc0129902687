package dto

import "time"

// CrearNotificacionRequest body para POST /api/notificaciones.
type CrearNotificacionRequest struct {
	Mensaje string `json:"mensaje"`
}

// EliminarNotificacionesRequest body para DELETE /api/notificaciones (lote).
type EliminarNotificacionesRequest struct {
	IDs []int64 `json:"ids"`
}

// NotificacionResponse notificación persistida.
type NotificacionResponse struct {
	ID        int64     `json:"id"`
	Mensaje   string    `json:"mensaje"`
	Leida     bool      `json:"leida"`
	CreatedAt time.Time `json:"createdAt"`
}
