// Package testutil holds helpers shared by package tests.
package testutil

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Now is the fixed instant tests evaluate expiry against.
var Now = time.Unix(1_760_000_000, 0).UTC()

// Clock returns Now.
func Clock() time.Time { return Now }

// Claims returns a complete claims payload valid at Now for one hour.
func Claims(permissions, roles []string) map[string]any {
	if permissions == nil {
		permissions = []string{}
	}
	if roles == nil {
		roles = []string{}
	}
	return map[string]any{
		"sub":          "ada@example.com",
		"userId":       42,
		"username":     "ada",
		"firstName":    "Ada",
		"lastName":     "Lovelace",
		"roles":        roles,
		"permissions":  permissions,
		"isAdmin":      false,
		"isSuperAdmin": false,
		"iat":          Now.Add(-time.Minute).Unix(),
		"exp":          Now.Add(time.Hour).Unix(),
	}
}

// Token encodes claims as a three-segment credential. The signature segment
// is filler; nothing in the console verifies it.
func Token(t testing.TB, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".c2lnbmF0dXJl"
}

// SignedToken issues a real HS256 credential for claims.
func SignedToken(t testing.TB, claims map[string]any, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims)).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
