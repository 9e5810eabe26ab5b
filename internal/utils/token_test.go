package utils_test

import (
	"testing"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/utils"
)

func init() {
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{
			JWTSecret:          "test-secret",
			JWTExpirationHours: 1,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(42, "manager")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "manager" {
		t.Errorf("claims: %+v", claims)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := utils.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := utils.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := utils.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("password stored in the clear")
	}
	if !utils.CheckPasswordHash("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if utils.CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
