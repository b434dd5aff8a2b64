package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos de la sesión.
// El token solo transporta la referencia a la sesión; el rol vigente se lee del almacén.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
}

// Generate genera un token firmado (HS256) para la sesión indicada.
// No se emite exp: la sesión vive hasta el logout explícito.
func Generate(secret, sessionID, userID, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if sessionID == "" {
		return "", fmt.Errorf("jwt: session id vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  userID,
			ID:       sessionID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		SessionID: sessionID,
		UserID:    userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida la firma y devuelve sessionID y userID.
// Retorna error si el token está malformado o la firma no coincide.
func Parse(secret, tokenString string) (sessionID, userID string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.SessionID, claims.UserID, nil
}
