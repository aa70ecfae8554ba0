package token

import (
	"testing"

	"github.com/spf13/viper"
)

func TestSignParseRoundTrip(t *testing.T) {
	viper.Set(JWT_SECRET, "test-secret")
	viper.Set(JWT_REFRESH_SECRET, "test-refresh-secret")

	ctx := Context{
		UserID:   42,
		Username: "alice",
		Uuid:     "9a1f0c2e-55aa-4b55-9a52-3a1f0c2e55aa",
		Email:    "alice@example.com",
		IsAdmin:  0,
	}

	signToken, refreshToken, err := Sign(ctx)
	if err != nil {
		t.Fatalf("Sign err: %v", err)
	}
	if signToken == "" || refreshToken == "" {
		t.Fatal("Sign returned empty token")
	}

	parsed, err := Parse(signToken, viper.GetString(JWT_SECRET), false)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if parsed.UserID != ctx.UserID || parsed.Username != ctx.Username ||
		parsed.Uuid != ctx.Uuid || parsed.Email != ctx.Email || parsed.IsAdmin != ctx.IsAdmin {
		t.Errorf("Parse round trip mismatch: got %+v, want %+v", parsed, ctx)
	}
}

func TestParseWrongSecret(t *testing.T) {
	viper.Set(JWT_SECRET, "test-secret")

	signToken, err := SignToken(Context{UserID: 7, Username: "bob", Uuid: "u", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("SignToken err: %v", err)
	}

	if _, err := Parse(signToken, "another-secret", false); err == nil {
		t.Error("Parse with wrong secret should fail")
	}
}

func TestRefreshTokenPairMismatch(t *testing.T) {
	viper.Set(JWT_SECRET, "test-secret")
	viper.Set(JWT_REFRESH_SECRET, "test-refresh-secret")

	signA, _, err := Sign(Context{UserID: 1, Username: "a", Uuid: "ua", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Sign err: %v", err)
	}
	_, refreshB, err := Sign(Context{UserID: 2, Username: "b", Uuid: "ub", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("Sign err: %v", err)
	}

	if _, _, err := refreshToken(signA, refreshB); err == nil {
		t.Error("refreshToken with a foreign refresh token should fail")
	}
}
