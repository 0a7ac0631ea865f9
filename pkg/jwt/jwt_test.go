package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Pos-api/pkg/jwt"
)

const (
	secret = "secreto-de-test"
	issuer = "pos-api-test"
)

func TestGenerateYParse_RoundTrip(t *testing.T) {
	token, err := pkgjwt.Generate(secret, "user-1", "cajero", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := pkgjwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "cajero", role)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	token, err := pkgjwt.Generate(secret, "user-1", "admin", issuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", token)
	assert.Error(t, err, "la firma no verifica con otro secreto")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := pkgjwt.Generate(secret, "user-1", "admin", issuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, token)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "admin", issuer, 60)
	assert.Error(t, err)
}

func TestParse_BasuraNoEsToken(t *testing.T) {
	_, _, err := pkgjwt.Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)
}
