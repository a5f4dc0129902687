package repository

import "github.com/tu-usuario/almacen-ventas/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia de usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByUsuario(usuario string) (*entity.Usuario, error)
	ListByRol(rol string) ([]*entity.Usuario, error)
}
