package entity

import "time"

// Notificacion es un aviso interno para el personal (solo persistencia; el
// envío queda fuera del alcance del backend).
type Notificacion struct {
	ID        int64
	Mensaje   string
	Leida     bool
	CreatedAt time.Time
}
