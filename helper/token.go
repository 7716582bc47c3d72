package helper

import (
	"errors"
	"fmt"
	"time"

	"tourhub/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what the API needs to know about the caller.
type Claims struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateAccessToken signs an HS256 token for the account and returns it with
// its expiry as a unix timestamp.
func GenerateAccessToken(claims Claims) (string, int64, error) {
	exp := time.Now().Add(time.Duration(config.ConfigInt("JWT_TTL_HOURS", 24)) * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     fmt.Sprintf("%d", claims.UserID),
		"userId":  claims.UserID,
		"email":   claims.Email,
		"isAdmin": claims.IsAdmin,
		"exp":     exp,
	})
	t, err := token.SignedString(jwtSecret())
	return t, exp, err
}

// VerifyToken checks signature and expiry and extracts the caller identity.
func VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, ok := mc["userId"].(float64)
	if !ok || id <= 0 {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	isAdmin, _ := mc["isAdmin"].(bool)

	return &Claims{UserID: uint(id), Email: email, IsAdmin: isAdmin}, nil
}
