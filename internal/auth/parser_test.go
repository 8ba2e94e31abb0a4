package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nirbeaver/construction-management/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, sub, role string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseValidToken(t *testing.T) {
	parser := NewParser(testSecret)

	principal, err := parser.Parse(signToken(t, testSecret, "user-42", "manager", time.Hour))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.UserID != "user-42" {
		t.Errorf("UserID = %q, want user-42", principal.UserID)
	}
	if principal.Role != model.RoleManager {
		t.Errorf("Role = %q, want manager", principal.Role)
	}
}

func TestParseUnknownRoleDefaultsToUser(t *testing.T) {
	parser := NewParser(testSecret)

	principal, err := parser.Parse(signToken(t, testSecret, "user-42", "superuser", time.Hour))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.Role != model.RoleUser {
		t.Errorf("Role = %q, want user", principal.Role)
	}
}

func TestParseRejects(t *testing.T) {
	parser := NewParser(testSecret)

	cases := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, "other-secret", "user-42", "user", time.Hour)},
		{"expired", signToken(t, testSecret, "user-42", "user", -time.Hour)},
		{"missing subject", signToken(t, testSecret, "", "user", time.Hour)},
		{"garbage", "not.a.token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parser.Parse(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	parser := NewParser(testSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-42"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
