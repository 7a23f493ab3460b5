package jwt

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
)

func TestAdminToken_RoundTrip(t *testing.T) {
	m := NewManager("s3cret", time.Hour)

	tok, err := m.GenerateAdminToken("ops")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.ValidateAdminToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	assert.Equal(t, claims.Subject, "ops")
	assert.Equal(t, claims.Role, RoleAdmin)
	assert.Equal(t, claims.Issuer, "review-analyzer")
}

func TestAdminToken_Rejects(t *testing.T) {
	m := NewManager("s3cret", time.Hour)

	other := NewManager("different", time.Hour)
	tok, _ := other.GenerateAdminToken("ops")
	_, err := m.ValidateAdminToken(tok)
	assert.NotEqual(t, err, nil)

	expired := NewManager("s3cret", -time.Minute)
	tok, _ = expired.GenerateAdminToken("ops")
	_, err = m.ValidateAdminToken(tok)
	assert.NotEqual(t, err, nil)

	viewer := gojwt.NewWithClaims(gojwt.SigningMethodHS256, &Claims{
		Role: "viewer",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "review-analyzer",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, _ := viewer.SignedString([]byte("s3cret"))
	_, err = m.ValidateAdminToken(signed)
	assert.NotEqual(t, err, nil)

	_, err = m.ValidateAdminToken("not-a-token")
	assert.NotEqual(t, err, nil)
}

func TestAdminToken_NoSecret(t *testing.T) {
	_, err := NewManager("", time.Hour).GenerateAdminToken("ops")
	assert.NotEqual(t, err, nil)
}
