package helper

import (
	"errors"
	"testing"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, exp, err := GenerateAccessToken(Claims{UserID: 7, Email: "admin@example.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if exp == 0 {
		t.Fatal("expiry not set")
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "admin@example.com" || !claims.IsAdmin {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifyToken_RejectsOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first")
	token, _, err := GenerateAccessToken(Claims{UserID: 1})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "second")
	if _, err := VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
