package repository

import "github.com/tu-usuario/almacen-ventas/internal/domain/entity"

// SeccionRepository define el puerto de secciones y subsecciones del catálogo.
type SeccionRepository interface {
	CreateSeccion(s *entity.Seccion) error
	ListSecciones() ([]*entity.Seccion, error)
	DeleteSeccion(id int64) error
	CreateSubseccion(s *entity.Subseccion) error
	ListSubsecciones(seccionID int64) ([]*entity.Subseccion, error)
	DeleteSubseccion(id int64) error
}
