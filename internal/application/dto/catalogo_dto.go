package dto

// CrearSeccionRequest body para POST /api/secciones.
type CrearSeccionRequest struct {
	Nombre string `json:"nombre"`
}

// SeccionResponse sección del catálogo.
type SeccionResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// CrearSubseccionRequest body para POST /api/secciones/:id/subsecciones.
type CrearSubseccionRequest struct {
	Nombre string `json:"nombre"`
}

// SubseccionResponse subsección de una sección.
type SubseccionResponse struct {
	ID        int64  `json:"id"`
	SeccionID int64  `json:"seccionId"`
	Nombre    string `json:"nombre"`
}
