package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/addisavenue/storefront-backend/pkg/config"
)

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "storefront",
		ExpirationMinutes: 30,
	}
	now := time.Now().UTC()

	payload := AccessTokenPayload{
		Email: "jane@example.com",
		Name:  "jane",
	}

	token, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.Email != "jane@example.com" {
		t.Fatalf("expected email to round-trip, got %q", claims.Email)
	}
	if claims.Name != "jane" {
		t.Fatalf("unexpected name %q", claims.Name)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}
}

func TestMintAccessTokenValidation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("missingSecret", func(t *testing.T) {
		cfg := config.JWTConfig{Issuer: "storefront", ExpirationMinutes: 30}
		if _, err := MintAccessToken(cfg, now, AccessTokenPayload{Email: "a@b.c"}); err == nil {
			t.Fatal("expected missing secret to fail")
		}
	})

	t.Run("missingEmail", func(t *testing.T) {
		cfg := config.JWTConfig{Secret: "s", Issuer: "storefront", ExpirationMinutes: 30}
		if _, err := MintAccessToken(cfg, now, AccessTokenPayload{}); err == nil {
			t.Fatal("expected missing email to fail")
		}
	})
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	now := time.Now().UTC()
	mintCfg := config.JWTConfig{Secret: "secret", Issuer: "someone-else", ExpirationMinutes: 30}
	token, err := MintAccessToken(mintCfg, now, AccessTokenPayload{Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	parseCfg := config.JWTConfig{Secret: "secret", Issuer: "storefront", ExpirationMinutes: 30}
	if _, err := ParseAccessToken(parseCfg, token); err == nil || !strings.Contains(err.Error(), "issuer") {
		t.Fatalf("expected issuer mismatch error, got %v", err)
	}
}
