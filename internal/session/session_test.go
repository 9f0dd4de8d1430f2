package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

func makeToken(t *testing.T, payload interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	body := base64.RawURLEncoding.EncodeToString(raw)
	return header + "." + body + ".sig"
}

func TestDeriveValidToken(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		"id":    7,
		"name":  "Amal Haddad",
		"email": "amal@oss-online.org",
		"role":  "rh",
	})

	user, err := Derive(token)
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	want := &model.User{ID: 7, Name: "Amal Haddad", Email: "amal@oss-online.org", Role: model.UserRoleRH}
	if *user != *want {
		t.Fatalf("Derive() = %+v, want %+v", user, want)
	}
}

func TestDeriveEmptyToken(t *testing.T) {
	user, err := Derive("")
	if err != nil {
		t.Fatalf("empty token should not error, got %v", err)
	}
	if user != nil {
		t.Fatalf("empty token should yield nil user, got %+v", user)
	}
}

func TestDeriveInvalidTokens(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	garbagePayload := header + "." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"

	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "garbage"},
		{"two segments", "a.b"},
		{"payload not json", garbagePayload},
		{"payload not base64", header + ".!!!.sig"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Derive(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Derive(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
			if user != nil {
				t.Errorf("Derive(%q) user = %+v, want nil", tt.token, user)
			}
		})
	}
}

func TestDeriveIncompletePayload(t *testing.T) {
	// A payload missing any of the identity fields must not yield a partially
	// populated user.
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing id", map[string]interface{}{"name": "x", "email": "x@y.z", "role": "rh"}},
		{"missing name", map[string]interface{}{"id": 1, "email": "x@y.z", "role": "rh"}},
		{"missing email", map[string]interface{}{"id": 1, "name": "x", "role": "rh"}},
		{"missing role", map[string]interface{}{"id": 1, "name": "x", "email": "x@y.z"}},
		{"id wrong type", map[string]interface{}{"id": "1", "name": "x", "email": "x@y.z", "role": "rh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Derive(makeToken(t, tt.payload))
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("error = %v, want ErrInvalidToken", err)
			}
			if user != nil {
				t.Errorf("user = %+v, want nil", user)
			}
		})
	}
}

func TestFromAuthHeader(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		"id": 1, "name": "a", "email": "a@b.c", "role": "admin",
	})

	user, err := FromAuthHeader("Bearer " + token)
	if err != nil {
		t.Fatalf("FromAuthHeader() error = %v", err)
	}
	if user.Role != model.UserRoleAdmin {
		t.Fatalf("role = %q, want admin", user.Role)
	}

	bare, err := FromAuthHeader(token)
	if err != nil || bare == nil {
		t.Fatalf("bare token should also derive, got user=%v err=%v", bare, err)
	}

	anon, err := FromAuthHeader("")
	if err != nil || anon != nil {
		t.Fatalf("empty header should be anonymous, got user=%v err=%v", anon, err)
	}
}
