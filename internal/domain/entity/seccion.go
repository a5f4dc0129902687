package entity

// Seccion agrupa productos del catálogo. Nombre es único.
type Seccion struct {
	ID     int64
	Nombre string
}

// Subseccion es una subdivisión de una sección.
type Subseccion struct {
	ID        int64
	SeccionID int64
	Nombre    string
}
