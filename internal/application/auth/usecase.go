package auth

import (
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
	"github.com/tu-usuario/almacen-ventas/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicate si el nombre de usuario ya existe.
func (uc *AuthUseCase) Registrar(in dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if in.Usuario == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rol != entity.RolAlmacen && in.Rol != entity.RolVendedor {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.usuarioRepo.GetByUsuario(in.Usuario)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Usuario
	}
	now := time.Now()
	usuario := &entity.Usuario{
		Usuario:      in.Usuario,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Rol:          in.Rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica usuario/password y genera el token de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByUsuario(in.Usuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Usuario: *toUsuarioResponse(usuario), Token: token}, nil
}

// Vendedores lista los usuarios con rol vendedor (para asignaciones de stock).
func (uc *AuthUseCase) Vendedores() ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListByRol(entity.RolVendedor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *toUsuarioResponse(u))
	}
	return out, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{ID: u.ID, Usuario: u.Usuario, Nombre: u.Nombre, Rol: u.Rol}
}
