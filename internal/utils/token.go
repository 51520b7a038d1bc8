package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"registro_web/internal/models"
)

// SessionClaims são os dados carregados no cookie de sessão.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Tipo     string `json:"tipo"`
	jwt.RegisteredClaims
}

// sessionTTL limita a validade do cookie a um turno de trabalho.
const sessionTTL = 12 * time.Hour

// GenerateSessionToken assina um token de sessão para o usuário autenticado.
func GenerateSessionToken(secret []byte, user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Tipo:     string(user.Tipo),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken valida e decodifica um token de sessão.
func ParseSessionToken(secret []byte, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
