package utils

import (
	"os"
	"strconv"
	"time"

	"webcafe/src/types"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(username string, userId uint, superuser bool) (string, error) {
	expiresAt := time.Now().Add(24 * time.Hour)
	claims := types.Claims{
		Username:  username,
		Superuser: superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userId)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
