// Package session derives the caller's identity from a stored bearer token.
//
// The token payload is decoded without signature verification: the decoded
// role only gates which views the portal exposes, never what the upstream
// API allows. The real authorization boundary is the upstream API itself,
// which re-checks the token on every privileged call.
package session

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

// ErrInvalidToken reports a token whose payload could not be decoded.
// Callers must discard the token and treat the requester as logged out.
var ErrInvalidToken = errors.New("session: invalid token")

// Derive extracts the user identity embedded in a bearer token. An empty
// token yields (nil, nil): not logged in, not an error. A malformed token
// yields (nil, ErrInvalidToken), never a partially populated user.
func Derive(rawToken string) (*model.User, error) {
	if rawToken == "" {
		return nil, nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	name, ok := claims["name"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &model.User{
		ID:    int(id),
		Name:  name,
		Email: email,
		Role:  model.UserRole(role),
	}, nil
}

// FromAuthHeader derives a session from an Authorization header value,
// accepting the "Bearer <token>" form or a bare token.
func FromAuthHeader(header string) (*model.User, error) {
	return Derive(StripBearer(header))
}

// StripBearer removes the "Bearer " scheme prefix when present.
func StripBearer(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
