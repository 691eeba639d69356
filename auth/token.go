package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-sniper/models"
)

// Claims carries the registered claim set plus the account id; nothing
// else goes into a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"uid"`
}

// IssueToken signs an HS256 token for userID, valid for the given duration.
func IssueToken(userID uint, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the embedded
// account id. Any failure is models.ErrUnauthenticated.
func ParseToken(tokenString string, secret []byte) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, models.ErrUnauthenticated
	}

	return claims.UserID, nil
}
