package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ventas/internal/application/auth"
	"github.com/tu-usuario/almacen-ventas/internal/application/dto"
	"github.com/tu-usuario/almacen-ventas/internal/domain"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/almacen-ventas/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porNombre map[string]*entity.Usuario
	nextID    int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porNombre: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.nextID++
	u.ID = r.nextID
	cu := *u
	r.porNombre[u.Usuario] = &cu
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	for _, u := range r.porNombre {
		if u.ID == id {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) GetByUsuario(usuario string) (*entity.Usuario, error) {
	u, ok := r.porNombre[usuario]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *fakeUsuarioRepo) ListByRol(rol string) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.porNombre {
		if u.Rol == rol {
			cu := *u
			out = append(out, &cu)
		}
	}
	return out, nil
}

func nuevoAuthUC() (*auth.AuthUseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "almacen-ventas-test",
	})
	return uc, repo
}

func TestRegistrar_HasheaPasswordYCrea(t *testing.T) {
	uc, repo := nuevoAuthUC()

	out, err := uc.Registrar(dto.RegistroRequest{
		Usuario: "maria", Password: "secreta123", Nombre: "María", Rol: entity.RolVendedor,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "maria", out.Usuario)
	assert.Equal(t, entity.RolVendedor, out.Rol)

	guardado := repo.porNombre["maria"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash, "el password nunca se guarda en plano")
	assert.NotEmpty(t, guardado.PasswordHash)
}

func TestRegistrar_UsuarioDuplicado(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Registrar(dto.RegistroRequest{Usuario: "maria", Password: "x12345", Rol: entity.RolVendedor})
	require.NoError(t, err)

	_, err = uc.Registrar(dto.RegistroRequest{Usuario: "maria", Password: "otra", Rol: entity.RolVendedor})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegistrar_RolInvalido(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Registrar(dto.RegistroRequest{Usuario: "maria", Password: "x12345", Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Registrar(dto.RegistroRequest{Usuario: "maria", Password: "secreta123", Rol: entity.RolAlmacen})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Usuario: "maria", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, _, rol, err := pkgjwt.Parse("secreto-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, userID)
	assert.Equal(t, entity.RolAlmacen, rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Registrar(dto.RegistroRequest{Usuario: "maria", Password: "secreta123", Rol: entity.RolAlmacen})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Usuario: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Login(dto.LoginRequest{Usuario: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVendedores_FiltraPorRol(t *testing.T) {
	uc, _ := nuevoAuthUC()
	_, err := uc.Registrar(dto.RegistroRequest{Usuario: "admin", Password: "x12345", Rol: entity.RolAlmacen})
	require.NoError(t, err)
	_, err = uc.Registrar(dto.RegistroRequest{Usuario: "pepe", Password: "x12345", Rol: entity.RolVendedor})
	require.NoError(t, err)

	out, err := uc.Vendedores()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pepe", out[0].Usuario)
}
