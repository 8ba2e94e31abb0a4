package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nirbeaver/construction-management/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Parser verifies bearer tokens issued by the identity provider and
// extracts the calling principal. The service never issues tokens itself.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func (p *Parser) Parse(tokenString string) (model.Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return model.Principal{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return model.Principal{}, ErrInvalidToken
	}

	role := model.Role(c.Role)
	switch role {
	case model.RoleAdmin, model.RoleManager, model.RoleUser:
	default:
		role = model.RoleUser
	}
	return model.Principal{UserID: c.Subject, Role: role}, nil
}
