package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNormalizar_QuitaAcentosYMinusculas(t *testing.T) {
	casos := map[string]string{
		"Camisa":         "camisa",
		"Pantalón":       "pantalon",
		"CAMISA AZUL":    "camisa azul",
		"Niño Ñandú":     "nino nandu",
		"café con leche": "cafe con leche",
		"":               "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, normalizar(entrada), "entrada: %q", entrada)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(errors.New("otro error")))
}
