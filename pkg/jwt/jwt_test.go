package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/supermack-billing/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "00000000-0000-0000-0000-00000000000a"
	testUserID    = "1"
	testIssuer    = "supermack-billing-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testUserID, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, uid, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sid)
	assert.Equal(t, testUserID, uid)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testSessionID, testUserID, testIssuer)
	assert.Error(t, err)
}

func TestGenerate_SinSesion(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", testUserID, testIssuer)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testUserID, testIssuer)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
