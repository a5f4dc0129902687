package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// RegistroRequest body para POST /api/auth/registro (solo rol almacen).
type RegistroRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"` // almacen | vendedor
}

// UsuarioResponse usuario sin datos sensibles.
type UsuarioResponse struct {
	ID      int64  `json:"id"`
	Usuario string `json:"usuario"`
	Nombre  string `json:"nombre"`
	Rol     string `json:"rol"`
}

// LoginResponse respuesta de login. El token también se entrega como cookie HttpOnly.
type LoginResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
	Token   string          `json:"token"`
}
