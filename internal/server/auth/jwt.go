// Package auth verifies the access tokens issued by the identity service.
// Tokens are HS256 JWTs whose subject is the user id a profile is bound to.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped into tokens minted by GenerateToken and required on parse.
const Issuer = "diaryfeed"

// Claims carries the standard claims; the user id travels in Subject.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a token for userID. The server itself never calls it;
// it exists for tooling and tests.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken validates tokenString and returns its subject. Expired
// tokens yield common.ErrTokenExpired, every other failure
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
